package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP status mapping.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindNotFound        Kind = "not_found"
	KindInvalidArgument Kind = "invalid_argument"
	KindInternal        Kind = "internal"
)

// Error carries a taxonomy kind plus a human-readable message. It is the
// only error type that crosses the handler boundary; collaborator errors
// are wrapped into one at the operation that observed them.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapInternal wraps a collaborator error as KindInternal, keeping the
// collaborator's own message in the payload.
func WrapInternal(err error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: KindInternal, Message: fmt.Sprintf("%s: %v", msg, err), Err: err}
}

// KindOf returns the taxonomy kind of err. Errors that never got classified
// default to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
