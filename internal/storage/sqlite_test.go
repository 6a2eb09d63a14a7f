package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightimpact/impactboard/internal/storage"
)

func newTestDB(t *testing.T) *storage.SQLiteNotificationStore {
	t.Helper()
	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewSQLiteNotificationStore(db)
}

func TestNotificationStore_LogAndList(t *testing.T) {
	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := storage.NewSQLiteNotificationStore(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	first := storage.NotificationLogEntry{
		MessageID: "msg-1", Kind: "welcome", Recipient: "a@b.com",
		Provider: "smtp", Subject: "Welcome to Impactboard",
		Status: "sent", CreatedAt: base,
	}
	second := storage.NotificationLogEntry{
		MessageID: "msg-2", Kind: "achievement", Recipient: "a@b.com",
		Provider: "smtp", Subject: "Achievement unlocked",
		Status: "failed", ErrorMsg: "connection refused",
		CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, store.LogNotification(ctx, first))
	require.NoError(t, store.LogNotification(ctx, second))

	entries, err := store.ListNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, "msg-2", entries[0].MessageID)
	assert.Equal(t, "failed", entries[0].Status)
	assert.Equal(t, "connection refused", entries[0].ErrorMsg)
	assert.Equal(t, "msg-1", entries[1].MessageID)
}

func TestNotificationStore_LimitDefaults(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.LogNotification(ctx, storage.NotificationLogEntry{
		MessageID: "msg-1", Kind: "welcome", Recipient: "a@b.com",
		Provider: "smtp", Subject: "s", Status: "sent",
		CreatedAt: time.Now().UTC(),
	}))

	// Non-positive limit falls back to the default.
	entries, err := store.ListNotifications(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPaymentEventStore_MarkProcessed(t *testing.T) {
	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := storage.NewSQLitePaymentEventStore(db)
	ctx := context.Background()

	seen, err := store.MarkProcessed(ctx, "pi_1", "payment_intent.succeeded")
	require.NoError(t, err)
	assert.False(t, seen)

	// Redelivery of the same event id is reported as seen.
	seen, err = store.MarkProcessed(ctx, "pi_1", "payment_intent.succeeded")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = store.MarkProcessed(ctx, "pi_2", "payment_intent.failed")
	require.NoError(t, err)
	assert.False(t, seen)
}
