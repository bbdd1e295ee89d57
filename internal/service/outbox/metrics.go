package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	outboxRelayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_relayed_total",
			Help: "Order transition events published from the outbox by event",
		},
		[]string{"event"},
	)

	outboxLag = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "outbox_lag_seconds",
			Help: "Age of the oldest event in the last relayed batch",
		},
	)
)
