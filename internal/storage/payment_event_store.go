package storage

import "context"

// PaymentEventStore tracks which payment webhook events have already been
// processed. Payment providers redeliver webhooks, so side effects must be
// guarded by this store.
type PaymentEventStore interface {
	// MarkProcessed records the event id and reports whether it had been
	// seen before. The check and the insert are a single atomic operation.
	MarkProcessed(ctx context.Context, eventID, eventType string) (alreadySeen bool, err error)
}
