package transitions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "transitions_publish_duration_seconds",
			Help:    "Duration of synchronous batch publishes to the transitions topic",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	publishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transitions_published_total",
			Help: "Messages sent to the transitions topic by result",
		},
		[]string{"result"},
	)
)
