// Package billing receives payment events from the external payment webhook
// boundary. Signature verification and event-type routing happen upstream;
// this package only consumes already-parsed events.
package billing

// Event type strings as delivered by the payment provider.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.failed"
)

// Bus topics under which payment events are published.
const (
	TopicPaymentSucceeded = "billing.payment_intent.succeeded"
	TopicPaymentFailed    = "billing.payment_intent.failed"
)

// PaymentEvent is the provider-owned payment intent payload. Amount is in the
// currency's minor unit (cents). Customer is set on success events; LastError
// on failure events.
type PaymentEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Customer  string `json:"customer,omitempty"`
	LastError string `json:"last_error,omitempty"`
}
