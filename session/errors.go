package session

import "errors"

// Sentinel errors for session transitions and request validation.
var (
	// ErrMalformedInput indicates the raw request blob is not parseable at all.
	ErrMalformedInput = errors.New("payment: malformed request input")

	// ErrInvalidTransition indicates a transition was requested from a view
	// state that does not allow it. This is a caller bug, not a user error.
	ErrInvalidTransition = errors.New("payment: invalid session transition")

	// ErrOutOfRange indicates an address index beyond the configured list.
	ErrOutOfRange = errors.New("payment: address index out of range")

	// ErrNoRequest indicates an operation that needs a loaded request.
	ErrNoRequest = errors.New("payment: no payment request loaded")
)

// FieldError reports a required request field that is missing or failed to
// parse. It satisfies errors.Is(err, ErrMalformedInput) == false; callers
// match it with errors.As.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "payment: missing or invalid field: " + e.Field
}

// NewFieldError builds a FieldError for the named raw-input field.
func NewFieldError(field string) *FieldError {
	return &FieldError{Field: field}
}
