package session

import "time"

// AttemptStatus tracks a wallet-connection attempt through its lifecycle.
type AttemptStatus int

const (
	AttemptPending AttemptStatus = iota
	AttemptSucceeded
	AttemptFailed
)

func (s AttemptStatus) String() string {
	switch s {
	case AttemptPending:
		return "pending"
	case AttemptSucceeded:
		return "succeeded"
	case AttemptFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt models a single in-flight wallet-connection request. Seq is
// monotonically increasing per session; a completion whose seq no longer
// matches the live attempt is discarded, never applied.
type Attempt struct {
	Seq       uint64
	Entry     AddressEntry
	Status    AttemptStatus
	StartedAt time.Time

	// HandleID identifies the connection handle once Status is Succeeded.
	HandleID string
	// Err holds the connector failure once Status is Failed.
	Err error
}

// Live reports whether the attempt is still awaiting its result.
func (a *Attempt) Live() bool {
	return a != nil && a.Status == AttemptPending
}
