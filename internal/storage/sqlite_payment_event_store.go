package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLitePaymentEventStore implements PaymentEventStore backed by SQLite.
type SQLitePaymentEventStore struct {
	db *sql.DB
}

// NewSQLitePaymentEventStore returns a new SQLitePaymentEventStore.
func NewSQLitePaymentEventStore(db *sql.DB) *SQLitePaymentEventStore {
	return &SQLitePaymentEventStore{db: db}
}

// MarkProcessed inserts the event id if unseen. The conflict clause makes the
// seen-check and the insert a single atomic statement.
func (s *SQLitePaymentEventStore) MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO payment_events (event_id, event_type, received_at)
		VALUES (?, ?, ?)
		ON CONFLICT(event_id) DO NOTHING`,
		eventID, eventType, time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("recording payment event %q: %w", eventID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking payment event insert: %w", err)
	}
	return n == 0, nil
}
