package session

import "time"

// EventType classifies session lifecycle events.
type EventType string

const (
	// EventValidationFailed indicates Load rejected the raw input.
	EventValidationFailed EventType = "validation_failed"

	// EventModalOpened indicates a network's address modal became visible.
	EventModalOpened EventType = "modal_opened"

	// EventModalClosed indicates the open modal was dismissed.
	EventModalClosed EventType = "modal_closed"

	// EventAddressCopied indicates an address was written to the clipboard.
	EventAddressCopied EventType = "address_copied"

	// EventConnectionStarted indicates a wallet connection attempt began.
	EventConnectionStarted EventType = "connection_started"

	// EventConnectionSucceeded indicates the live attempt completed.
	EventConnectionSucceeded EventType = "connection_succeeded"

	// EventConnectionFailed indicates the live attempt failed.
	EventConnectionFailed EventType = "connection_failed"
)

// Event is a session lifecycle notification delivered to the EventFunc
// hook. Fields beyond Type and Time are populated where they apply.
type Event struct {
	Type    EventType
	Time    time.Time
	Network Network
	Index   int
	Address string
	// HandleID identifies the connection handle on success.
	HandleID string
	// Err carries the failure for validation and connection events.
	Err error
}

// EventFunc receives session events. Hooks run synchronously inside the
// transition that produced the event, so they must be fast and must not
// call back into the session.
type EventFunc func(Event)
