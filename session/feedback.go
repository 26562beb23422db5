package session

import "time"

// CopyFeedbackTTL is how long the "copied" indicator stays visible.
const CopyFeedbackTTL = 2 * time.Second

// Feedback is the time-bounded "copied" indicator for one address. At most
// one is active per session; a new copy replaces it and restarts the
// timer. Seq lets a scheduled expiry recognise it has been superseded.
type Feedback struct {
	Seq       uint64
	Network   Network
	Index     int
	ExpiresAt time.Time
}

// Matches reports whether the feedback belongs to the given entry.
func (f *Feedback) Matches(e AddressEntry) bool {
	return f != nil && f.Network == e.Network && f.Index == e.Index
}
