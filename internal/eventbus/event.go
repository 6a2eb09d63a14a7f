package eventbus

import "time"

// Event represents an application event published to the bus. Payload holds
// the typed event value owned by the publishing package.
type Event struct {
	Type      string
	Timestamp time.Time
	Payload   any
}

// Listener is a function that handles an event.
type Listener func(Event)
