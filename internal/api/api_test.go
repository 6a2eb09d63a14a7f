package api_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/brightimpact/impactboard/internal/api"
	"github.com/brightimpact/impactboard/internal/eventbus"
	"github.com/brightimpact/impactboard/internal/i18n"
	"github.com/brightimpact/impactboard/internal/notification"
	"github.com/brightimpact/impactboard/internal/storage"
)

// --- stub transport provider ---

type stubProvider struct {
	calls   int
	lastMsg notification.Message
	err     error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Send(_ context.Context, msg notification.Message) error {
	p.calls++
	p.lastMsg = msg
	return p.err
}

// --- stub notification store ---

type stubStore struct {
	entries []storage.NotificationLogEntry
	listErr error
}

func (s *stubStore) LogNotification(_ context.Context, entry storage.NotificationLogEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubStore) ListNotifications(_ context.Context, limit int) ([]storage.NotificationLogEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if limit > 0 && limit < len(s.entries) {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}

// --- stub event bus (synchronous, records publishes) ---

type publishedEvent struct {
	topic   string
	payload any
}

type stubBus struct {
	published []publishedEvent
}

func (b *stubBus) Publish(eventType string, payload any) {
	b.published = append(b.published, publishedEvent{topic: eventType, payload: payload})
}

func (b *stubBus) Subscribe(_ eventbus.Listener) {}
func (b *stubBus) Close()                        {}

// --- test server ---

type testEnv struct {
	router   *chi.Mux
	provider *stubProvider
	store    *stubStore
	bus      *stubBus
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := &stubProvider{}
	store := &stubStore{}
	bus := &stubBus{}

	renderer := notification.NewRenderer(i18n.Load("en"))
	dispatcher := notification.NewDispatcher(renderer, provider, store, logger)
	srv := api.New(dispatcher, renderer, store, bus, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		srv.Mount(r)
	})

	return &testEnv{router: r, provider: provider, store: store, bus: bus}
}
