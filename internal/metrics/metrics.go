// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationDispatches counts dispatch attempts by kind and outcome.
	NotificationDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impactboard_notification_dispatches_total",
		Help: "Notification dispatch attempts by kind and outcome.",
	}, []string{"kind", "status"})

	// PaymentEvents counts payment webhook events by type and processing result.
	PaymentEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impactboard_payment_events_total",
		Help: "Payment webhook events by type and processing result.",
	}, []string{"type", "result"})
)
