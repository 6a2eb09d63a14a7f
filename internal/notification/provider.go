// Package notification renders outbound email notifications from typed
// templates and dispatches them through a delivery provider.
package notification

import "context"

// Message is the content handed to a Provider for delivery.
type Message struct {
	// ID is the dispatch correlation id stamped by the Dispatcher.
	ID      string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Provider is the interface for notification delivery backends.
// Implementations must be safe for concurrent use by in-flight requests.
type Provider interface {
	// Name returns the provider identifier (e.g. "smtp").
	Name() string
	// Send delivers the message using the provider's transport.
	Send(ctx context.Context, msg Message) error
}
