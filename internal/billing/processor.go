package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brightimpact/impactboard/internal/eventbus"
	"github.com/brightimpact/impactboard/internal/metrics"
	"github.com/brightimpact/impactboard/internal/storage"
)

// processTimeout bounds the handling of a single payment event.
const processTimeout = 30 * time.Second

// Processor routes payment events to the sink, guarding against the
// provider's at-least-once webhook delivery: every event id is recorded in
// the payment event store and duplicates are skipped before the sink runs.
type Processor struct {
	sink   EventSink
	store  storage.PaymentEventStore
	logger *slog.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(sink EventSink, store storage.PaymentEventStore, logger *slog.Logger) *Processor {
	return &Processor{sink: sink, store: store, logger: logger}
}

// Process deduplicates and handles one payment event.
func (p *Processor) Process(ctx context.Context, ev PaymentEvent) error {
	if ev.ID == "" {
		return fmt.Errorf("payment event has no id")
	}

	seen, err := p.store.MarkProcessed(ctx, ev.ID, ev.Type)
	if err != nil {
		return fmt.Errorf("deduplicating payment event %q: %w", ev.ID, err)
	}
	if seen {
		p.logger.Info("skipping duplicate payment event", slog.String("event_id", ev.ID))
		metrics.PaymentEvents.WithLabelValues(ev.Type, "duplicate").Inc()
		return nil
	}

	switch ev.Type {
	case EventPaymentSucceeded:
		err = p.sink.OnPaymentSucceeded(ctx, ev)
	case EventPaymentFailed:
		err = p.sink.OnPaymentFailed(ctx, ev)
	default:
		err = fmt.Errorf("unknown payment event type %q", ev.Type)
	}

	result := "processed"
	if err != nil {
		result = "error"
	}
	metrics.PaymentEvents.WithLabelValues(ev.Type, result).Inc()
	return err
}

// Listener adapts the Processor to an eventbus listener. Events whose payload
// is not a PaymentEvent are ignored.
func (p *Processor) Listener() eventbus.Listener {
	return func(e eventbus.Event) {
		ev, ok := e.Payload.(PaymentEvent)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()
		if err := p.Process(ctx, ev); err != nil {
			p.logger.Error("payment event processing failed",
				slog.String("event_id", ev.ID), slog.Any("error", err))
		}
	}
}
