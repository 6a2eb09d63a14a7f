package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brightimpact/impactboard/internal/metrics"
	"github.com/brightimpact/impactboard/internal/storage"
)

// Status classifies the outcome of a dispatch attempt.
type Status string

const (
	StatusDelivered       Status = "delivered"
	StatusInvalid         Status = "invalid"
	StatusUnknownTemplate Status = "unknown_template"
	StatusTransportFailed Status = "transport_failed"
	StatusFailed          Status = "failed"
)

// DispatchResult is the tagged outcome of a single dispatch. Err carries the
// failure detail for every status except StatusDelivered.
type DispatchResult struct {
	Status    Status
	MessageID string
	Err       error
}

// Delivered reports whether the provider accepted the message.
func (r DispatchResult) Delivered() bool { return r.Status == StatusDelivered }

// Dispatcher renders a notification and submits it to the delivery provider
// in one operation. It is stateless across calls; each dispatch makes exactly
// one transport attempt and records the outcome in the delivery log.
type Dispatcher struct {
	renderer *Renderer
	provider Provider
	store    storage.NotificationStore
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher. store may be nil when delivery logging
// is not wanted (tests, CLI preview).
func NewDispatcher(renderer *Renderer, provider Provider, store storage.NotificationStore, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{renderer: renderer, provider: provider, store: store, logger: logger}
}

// Dispatch validates, renders, and delivers one notification. Validation
// failures are reported before any rendering or transport work happens.
// Calling Dispatch twice sends twice; there is no idempotency key yet.
func (d *Dispatcher) Dispatch(ctx context.Context, recipient string, kind Kind, params Params) DispatchResult {
	if recipient == "" {
		return d.rejected(kind, &MissingFieldError{Field: "email"})
	}
	if err := params.Validate(); err != nil {
		return d.rejected(kind, err)
	}

	doc, err := d.renderer.Render(kind, params)
	if err != nil {
		status := StatusFailed
		var unknown *UnknownTemplateError
		if errors.As(err, &unknown) {
			status = StatusUnknownTemplate
		}
		metrics.NotificationDispatches.WithLabelValues(string(kind), string(status)).Inc()
		d.logger.Error("notification render failed",
			slog.String("kind", string(kind)), slog.Any("error", err))
		return DispatchResult{Status: status, Err: err}
	}

	msg := Message{
		ID:      uuid.NewString(),
		To:      recipient,
		Subject: doc.Subject,
		HTML:    doc.HTML,
		Text:    doc.Text,
	}

	// Exactly one transport attempt per dispatch. Retries are deferred to a
	// future delivery queue.
	sendErr := d.provider.Send(ctx, msg)

	result := DispatchResult{Status: StatusDelivered, MessageID: msg.ID}
	entry := storage.NotificationLogEntry{
		MessageID: msg.ID,
		Kind:      string(kind),
		Recipient: recipient,
		Provider:  d.provider.Name(),
		Subject:   doc.Subject,
		Status:    "sent",
		CreatedAt: time.Now().UTC(),
	}
	if sendErr != nil {
		result = DispatchResult{
			Status:    StatusTransportFailed,
			MessageID: msg.ID,
			Err:       &TransportError{Provider: d.provider.Name(), Err: sendErr},
		}
		entry.Status = "failed"
		entry.ErrorMsg = sendErr.Error()
		d.logger.Error("notification delivery failed",
			slog.String("kind", string(kind)),
			slog.String("message_id", msg.ID),
			slog.Any("error", sendErr))
	}

	metrics.NotificationDispatches.WithLabelValues(string(kind), string(result.Status)).Inc()

	if d.store != nil {
		// The delivery already happened; don't let request cancellation lose the record.
		logCtx := context.WithoutCancel(ctx)
		if logErr := d.store.LogNotification(logCtx, entry); logErr != nil {
			d.logger.Warn("failed to record notification delivery",
				slog.String("message_id", msg.ID), slog.Any("error", logErr))
		}
	}

	return result
}

// rejected reports a validation failure without touching the renderer or provider.
func (d *Dispatcher) rejected(kind Kind, err error) DispatchResult {
	metrics.NotificationDispatches.WithLabelValues(string(kind), string(StatusInvalid)).Inc()
	return DispatchResult{Status: StatusInvalid, Err: err}
}
