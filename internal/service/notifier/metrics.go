package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_emitted_total",
			Help: "Notifications emitted by order event and recipient role",
		},
		[]string{"event", "role"},
	)

	notificationPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_publish_failures_total",
			Help: "Notifications that could not be published to the event channel",
		},
		[]string{"role"},
	)
)
