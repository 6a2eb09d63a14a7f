// Package api implements the REST handlers: email previews, email sends,
// the notification delivery log, and the payment webhook boundary.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightimpact/impactboard/internal/eventbus"
	"github.com/brightimpact/impactboard/internal/notification"
	"github.com/brightimpact/impactboard/internal/storage"
)

const errInvalidJSONBody = "invalid JSON body"

// Server holds all dependencies for the REST API handlers.
type Server struct {
	dispatcher *notification.Dispatcher
	renderer   *notification.Renderer
	notifStore storage.NotificationStore
	bus        eventbus.EventBus
	logger     *slog.Logger
}

// New creates a new API Server backed by the provided collaborators.
func New(dispatcher *notification.Dispatcher, renderer *notification.Renderer,
	notifStore storage.NotificationStore, bus eventbus.EventBus, logger *slog.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		renderer:   renderer,
		notifStore: notifStore,
		bus:        bus,
		logger:     logger,
	}
}

// Mount registers all API routes under the given router.
func (s *Server) Mount(r chi.Router) {
	// Email previews: render only, never touch the transport.
	r.Route("/email-previews", func(r chi.Router) {
		r.Get("/welcome", s.handlePreviewWelcome)
		r.Get("/sponsorship", s.handlePreviewSponsorship)
		r.Get("/achievement", s.handlePreviewAchievement)
		r.Get("/monthly-report", s.handlePreviewMonthlyReport)
	})

	// Email sends: render plus one transport attempt.
	r.Route("/emails", func(r chi.Router) {
		r.Post("/welcome", s.handleSendWelcome)
		r.Post("/sponsorship", s.handleSendSponsorship)
		r.Post("/achievement", s.handleSendAchievement)
		r.Post("/monthly-report", s.handleSendMonthlyReport)
	})

	// Delivery log
	r.Get("/notifications/log", s.handleListNotificationLog)

	// Payment webhook boundary (signature verification happens upstream).
	r.Post("/webhooks/payments", s.handlePaymentWebhook)

	r.Get("/version", s.handleVersion)
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeHTML(w http.ResponseWriter, status int, doc string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(doc))
}
