// Package errs defines the error taxonomy used across the engine. Handlers
// map kinds to HTTP statuses; services attach stable codes that clients can
// branch on.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for propagation and logging.
type Kind int

const (
	// Validation means the input violates the request schema.
	Validation Kind = iota
	// Auth means a missing or invalid credential.
	Auth
	// TierDenied means the feature is off for the caller's tier.
	TierDenied
	// QuotaExhausted means the feature's reserve was refused.
	QuotaExhausted
	// NotFound means a user, session, question or snapshot is absent.
	NotFound
	// StateConflict means the session is in a state that forbids the call.
	StateConflict
	// Transient means the store was unavailable or a transaction conflicted
	// past the retry budget; the client may retry.
	Transient
	// Fatal means an invariant was violated. Logged with full context,
	// surfaced as a generic message.
	Fatal
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "VALIDATION"
	case Auth:
		return "AUTH"
	case TierDenied:
		return "TIER_DENIED"
	case QuotaExhausted:
		return "QUOTA_EXHAUSTED"
	case NotFound:
		return "NOT_FOUND"
	case StateConflict:
		return "STATE_CONFLICT"
	case Transient:
		return "TRANSIENT"
	case Fatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// HTTPStatus maps a kind to its response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case TierDenied:
		return http.StatusForbidden
	case QuotaExhausted:
		return http.StatusTooManyRequests
	case NotFound:
		return http.StatusNotFound
	case StateConflict:
		return http.StatusConflict
	case Transient:
		return http.StatusServiceUnavailable
	case Fatal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Error is the concrete error type carried between layers.
type Error struct {
	Kind    Kind
	Code    string // stable machine-readable code, e.g. "ALREADY_COMPLETED"
	Message string
	Err     error // wrapped cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a new Error.
func E(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap builds an Error around a cause.
func Wrap(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// KindOf returns the kind of err, or Fatal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Fatal
}

// CodeOf returns the stable code of err, or "INTERNAL" when unclassified.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "INTERNAL"
}

// IsTransient reports whether err should be retried by the store layer.
func IsTransient(err error) bool {
	return KindOf(err) == Transient
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
