// Package session implements the payment-session state machine: loading a
// merchant payment request, exposing network/address choices, tracking a
// single wallet-connection attempt, and time-bounding clipboard feedback.
//
// The session is owned by one goroutine (the UI update loop) and is never
// mutated concurrently. Asynchronous work — the wallet handshake and the
// copy-indicator expiry — re-enters through CompleteConnect and
// ExpireCopied carrying the sequence number it was issued with; stale
// sequence numbers are dropped entirely so an abandoned attempt can never
// overwrite newer state.
package session

import "time"

// ViewState is the currently visible UI state.
type ViewState int

const (
	// ViewIdle means no payment request is loaded.
	ViewIdle ViewState = iota
	// ViewLoaded means a request is present and no modal is open.
	ViewLoaded
	// ViewModal means exactly one network's address modal is visible.
	ViewModal
)

func (v ViewState) String() string {
	switch v {
	case ViewIdle:
		return "idle"
	case ViewLoaded:
		return "loaded"
	case ViewModal:
		return "modal"
	default:
		return "unknown"
	}
}

// Clipboard is the capability the session delegates copy actions to.
type Clipboard interface {
	WriteText(s string) error
}

// Session is the orchestrator. All mutation funnels through its transition
// methods, which keeps the invariants (single modal, single live attempt,
// single active feedback) enforceable in one place.
type Session struct {
	view  ViewState
	modal Network // valid only while view == ViewModal

	request *PaymentRequest

	attempt    *Attempt
	attemptSeq uint64

	feedback    *Feedback
	feedbackSeq uint64

	// Events, when set, receives lifecycle notifications.
	Events EventFunc

	now func() time.Time
}

// New returns an idle session.
func New() *Session {
	return &Session{now: time.Now}
}

// View returns the current view state.
func (s *Session) View() ViewState { return s.view }

// ModalNetwork returns the network whose modal is open. Only meaningful
// while View() == ViewModal.
func (s *Session) ModalNetwork() Network { return s.modal }

// Request returns the loaded payment request, nil while idle.
func (s *Session) Request() *PaymentRequest { return s.request }

// Book returns the address book over the loaded request.
func (s *Session) Book() AddressBook { return NewAddressBook(s.request) }

// Attempt returns the current connection attempt, nil if none.
func (s *Session) Attempt() *Attempt { return s.attempt }

// Feedback returns the active copy indicator, nil if none.
func (s *Session) Feedback() *Feedback { return s.feedback }

func (s *Session) emit(e Event) {
	if s.Events != nil {
		e.Time = s.now()
		s.Events(e)
	}
}

// Load parses raw JSON input and installs the resulting request. On
// success the session moves to Loaded and all derived state from any
// prior request is cleared. On failure the prior state is kept untouched
// and the validation error is returned to the caller.
func (s *Session) Load(data []byte) error {
	req, err := Parse(data)
	if err != nil {
		s.emit(Event{Type: EventValidationFailed, Err: err})
		return err
	}
	s.LoadRequest(req)
	return nil
}

// LoadRequest installs an already-validated request, replacing the prior
// one wholesale. Stale attempt and feedback state never leaks into the
// new request.
func (s *Session) LoadRequest(req *PaymentRequest) {
	s.request = req
	s.view = ViewLoaded
	s.modal = ""
	s.attempt = nil
	s.feedback = nil
}

// OpenModal makes the given network's address modal visible. Allowed from
// Loaded and from the other network's modal; the last call wins, so both
// modals can never be visible at once. Opening with zero configured
// addresses is allowed.
func (s *Session) OpenModal(n Network) error {
	if s.view == ViewIdle {
		return ErrInvalidTransition
	}
	if s.view == ViewModal && s.modal == n {
		return nil
	}
	s.view = ViewModal
	s.modal = n
	s.emit(Event{Type: EventModalOpened, Network: n})
	return nil
}

// CloseModal returns to Loaded. Calling it with no modal open is a no-op,
// not an error. Closing abandons a pending connection attempt: its result,
// if it ever arrives, is discarded.
func (s *Session) CloseModal() {
	if s.view != ViewModal {
		return
	}
	n := s.modal
	s.view = ViewLoaded
	s.modal = ""
	if s.attempt.Live() {
		s.attempt = nil
	}
	s.emit(Event{Type: EventModalClosed, Network: n})
}

// Copy delegates to the clipboard capability and, on success, activates
// the copy indicator for the entry. Clipboard failure creates no feedback
// and is returned to the caller; it is non-fatal.
func (s *Session) Copy(entry AddressEntry, clip Clipboard) (uint64, error) {
	if err := clip.WriteText(entry.Address); err != nil {
		return 0, err
	}
	return s.MarkCopied(entry), nil
}

// MarkCopied activates (or replaces) the copy indicator for the entry and
// returns the sequence number the expiry timer must present to
// ExpireCopied. Re-copying before expiry replaces the indicator and
// restarts the clock instead of flickering.
func (s *Session) MarkCopied(entry AddressEntry) uint64 {
	s.feedbackSeq++
	s.feedback = &Feedback{
		Seq:       s.feedbackSeq,
		Network:   entry.Network,
		Index:     entry.Index,
		ExpiresAt: s.now().Add(CopyFeedbackTTL),
	}
	s.emit(Event{
		Type:    EventAddressCopied,
		Network: entry.Network,
		Index:   entry.Index,
		Address: entry.Address,
	})
	return s.feedbackSeq
}

// ExpireCopied clears the indicator identified by seq. A stale seq — the
// indicator was replaced or the session reset — is ignored, so a timer
// scheduled for an old copy never clears a newer one.
func (s *Session) ExpireCopied(seq uint64) bool {
	if s.feedback == nil || s.feedback.Seq != seq {
		return false
	}
	s.feedback = nil
	return true
}

// BeginConnect starts a wallet-connection attempt for the entry and
// returns its sequence number. It requires the entry's network modal to be
// open; anything else is a caller contract violation. Starting a new
// attempt while one is pending supersedes it: the prior attempt is
// discarded outright and its eventual result will not match any live seq.
func (s *Session) BeginConnect(entry AddressEntry) (uint64, error) {
	if s.view != ViewModal || s.modal != entry.Network {
		return 0, ErrInvalidTransition
	}
	s.attemptSeq++
	s.attempt = &Attempt{
		Seq:       s.attemptSeq,
		Entry:     entry,
		Status:    AttemptPending,
		StartedAt: s.now(),
	}
	s.emit(Event{
		Type:    EventConnectionStarted,
		Network: entry.Network,
		Index:   entry.Index,
		Address: entry.Address,
	})
	return s.attemptSeq, nil
}

// CompleteConnect records the result of the attempt identified by seq.
// Results for superseded or abandoned attempts report false and leave the
// session untouched.
func (s *Session) CompleteConnect(seq uint64, handleID string, err error) bool {
	if s.attempt == nil || s.attempt.Seq != seq || s.attempt.Status != AttemptPending {
		return false
	}
	if err != nil {
		s.attempt.Status = AttemptFailed
		s.attempt.Err = err
		s.emit(Event{
			Type:    EventConnectionFailed,
			Network: s.attempt.Entry.Network,
			Index:   s.attempt.Entry.Index,
			Address: s.attempt.Entry.Address,
			Err:     err,
		})
		return true
	}
	s.attempt.Status = AttemptSucceeded
	s.attempt.HandleID = handleID
	s.emit(Event{
		Type:     EventConnectionSucceeded,
		Network:  s.attempt.Entry.Network,
		Index:    s.attempt.Entry.Index,
		Address:  s.attempt.Entry.Address,
		HandleID: handleID,
	})
	return true
}

// Reset returns to Idle from any view, discarding the request and all
// derived state. Sequence counters keep counting so in-flight results
// from before the reset stay unmatchable.
func (s *Session) Reset() {
	s.view = ViewIdle
	s.modal = ""
	s.request = nil
	s.attempt = nil
	s.feedback = nil
}
