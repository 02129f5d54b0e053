package booking

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a booking failure.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindPolicy            ErrorKind = "policy"
	KindConflict          ErrorKind = "conflict"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindForbidden         ErrorKind = "forbidden"
)

// BookingError is a domain failure with a stable kind and a caller-facing message.
type BookingError struct {
	Kind    ErrorKind
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) error {
	return &BookingError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...any) error {
	return newError(KindValidation, format, args...)
}

func NewNotFoundError(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

func NewPolicyViolation(format string, args ...any) error {
	return newError(KindPolicy, format, args...)
}

func NewConflictError(format string, args ...any) error {
	return newError(KindConflict, format, args...)
}

func NewInvalidTransition(from, to string) error {
	return newError(KindInvalidTransition, "Cannot transition from '%s' to '%s'", from, to)
}

func NewForbiddenError(format string, args ...any) error {
	return newError(KindForbidden, format, args...)
}

// KindOf returns the kind of a BookingError anywhere in err's chain, or "".
func KindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// MessageOf returns the caller-facing message of a BookingError, or err.Error().
func MessageOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}
