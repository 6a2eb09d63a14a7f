package billing

import (
	"context"
	"log/slog"
)

// EventSink handles verified, deduplicated payment events. Implementations
// should be idempotent and side-effect-light: the sink is the extension point
// where payment confirmation emails and dunning retries will be wired in
// later, without touching the webhook boundary.
type EventSink interface {
	OnPaymentSucceeded(ctx context.Context, ev PaymentEvent) error
	OnPaymentFailed(ctx context.Context, ev PaymentEvent) error
}

// LogSink is the default EventSink: it records each event and takes no
// further action.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// OnPaymentSucceeded logs the successful payment.
func (s *LogSink) OnPaymentSucceeded(_ context.Context, ev PaymentEvent) error {
	s.logger.Info("payment succeeded",
		slog.String("event_id", ev.ID),
		slog.Int64("amount", ev.Amount),
		slog.String("currency", ev.Currency),
		slog.String("customer", ev.Customer),
	)
	return nil
}

// OnPaymentFailed logs the failed payment with the provider's last error.
func (s *LogSink) OnPaymentFailed(_ context.Context, ev PaymentEvent) error {
	s.logger.Warn("payment failed",
		slog.String("event_id", ev.ID),
		slog.Int64("amount", ev.Amount),
		slog.String("currency", ev.Currency),
		slog.String("last_error", ev.LastError),
	)
	return nil
}
