package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure. Callers branch on the kind, never on the message.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "authorization"
	KindInvalidState  Kind = "invalid_state"
	KindValidation    Kind = "validation"
)

// Sentinel values for errors.Is matching against any *Error of the same kind.
var (
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "not found"}
	ErrAuthorization = &Error{Kind: KindAuthorization, Message: "not authorized"}
	ErrInvalidState  = &Error{Kind: KindInvalidState, Message: "invalid state"}
	ErrValidation    = &Error{Kind: KindValidation, Message: "validation failed"}
)

// Error is a typed domain failure. None of these are retryable.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Is reports kind equality so errors.Is(err, ErrNotFound) matches every not-found failure.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing competition, match, user or bot.
func NotFound(format string, args ...any) error {
	return newf(KindNotFound, format, args...)
}

// Unauthorized reports an actor lacking the role an operation requires.
func Unauthorized(format string, args ...any) error {
	return newf(KindAuthorization, format, args...)
}

// InvalidState reports an operation that is not valid for the current match status.
func InvalidState(format string, args ...any) error {
	return newf(KindInvalidState, format, args...)
}

// Validation reports malformed input or a membership rule violation.
func Validation(format string, args ...any) error {
	return newf(KindValidation, format, args...)
}

// KindOf returns the kind of a domain error, or "" for infrastructure errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
