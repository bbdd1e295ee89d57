package transitions

import "github.com/IBM/sarama"

type producer interface {
	SendMessages(msgs []*sarama.ProducerMessage) error
}
