package lifecycle

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these, so callers match
// with errors.Is(err, ErrValidation) and friends.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidState      = errors.New("invalid request state")
	ErrAlreadyResponded  = errors.New("exigencia already responded")
	ErrNoActiveExigencia = errors.New("no active exigencia")
	ErrUnauthorized      = errors.New("not authorized")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// Error carries the kind of failure plus the offending field, when there is one.
type Error struct {
	Kind    error
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// ValidationError reports a precondition violated by the caller's input.
func ValidationError(field, message string) *Error {
	return &Error{Kind: ErrValidation, Field: field, Message: message}
}

// InvalidStateError reports an operation the current status forbids.
func InvalidStateError(message string) *Error {
	return &Error{Kind: ErrInvalidState, Field: "status", Message: message}
}

// AuthorizationError reports a caller that may not act on the request.
func AuthorizationError(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// StoreUnavailableError wraps a failure of an external store. Callers may retry.
func StoreUnavailableError(err error) *Error {
	return &Error{Kind: ErrStoreUnavailable, Err: err}
}

// FieldOf extracts the offending field from err, if any.
func FieldOf(err error) string {
	var le *Error
	if errors.As(err, &le) {
		return le.Field
	}
	return ""
}
