package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected with 429 by the instance rate limiter",
	},
	[]string{"method", "route"},
)
