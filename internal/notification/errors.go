package notification

import "fmt"

// MissingFieldError is returned when a required dispatch field is empty.
// It is reported before any rendering or transport call is attempted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// UnknownTemplateError is returned when no template exists for the requested
// kind or variant.
type UnknownTemplateError struct {
	Kind    Kind
	Variant string
}

func (e *UnknownTemplateError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("no %q template variant %q", e.Kind, e.Variant)
	}
	return fmt.Sprintf("no template for notification kind %q", e.Kind)
}

// TransportError wraps a failure reported by the delivery provider.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider %q failed to deliver: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
