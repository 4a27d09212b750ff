package model

import (
	"errors"
	"fmt"
)

// ErrorKind is a machine-readable failure category. Every kind maps to one
// HTTP status and one user-facing message at the handler boundary.
type ErrorKind string

const (
	ErrMissingURL          ErrorKind = "MISSING_URL"
	ErrInvalidURL          ErrorKind = "INVALID_URL"
	ErrInvalidBody         ErrorKind = "INVALID_BODY"
	ErrFetchFailed         ErrorKind = "FETCH_FAILED"
	ErrInsufficientContent ErrorKind = "INSUFFICIENT_CONTENT"
	ErrEmptyGeneration     ErrorKind = "EMPTY_GENERATION"
	ErrUnexpected          ErrorKind = "UNEXPECTED_FAILURE"
)

// Error is a domain error carrying a kind, a safe message and an optional cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf returns a new *Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError returns a new *Error of the given kind wrapping err.
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// ErrorKindOf returns the kind of the first *Error in err's chain.
// Errors without a kind are ErrUnexpected; nil has no kind.
func ErrorKindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrUnexpected
}

// ErrorMessage returns the message of the first *Error in err's chain,
// or err.Error() for foreign errors.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Message != "" {
			return e.Message
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return string(e.Kind)
	}
	return err.Error()
}
