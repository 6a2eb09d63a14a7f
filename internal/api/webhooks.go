package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brightimpact/impactboard/internal/billing"
)

// handlePaymentWebhook receives a payment event from the upstream webhook
// boundary (which already verified the provider signature) and publishes it
// on the event bus. Processing, including duplicate-delivery detection,
// happens asynchronously in the billing processor.
func (s *Server) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var ev billing.PaymentEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}
	if ev.ID == "" || ev.Type == "" {
		writeError(w, http.StatusBadRequest, "payment event requires id and type")
		return
	}

	var topic string
	switch ev.Type {
	case billing.EventPaymentSucceeded:
		topic = billing.TopicPaymentSucceeded
	case billing.EventPaymentFailed:
		topic = billing.TopicPaymentFailed
	default:
		writeError(w, http.StatusBadRequest, "unsupported payment event type")
		return
	}

	s.logger.Info("payment webhook received",
		slog.String("event_id", ev.ID), slog.String("event_type", ev.Type))
	s.bus.Publish(topic, ev)

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
