// Package apperrors carries the error taxonomy shared by the workflow
// services and the HTTP layer. Every failure surfaced to a caller has a
// kind; the HTTP layer maps kinds to status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindAlreadyProcessed  Kind = "already_processed"
	KindDuplicatePending  Kind = "duplicate_pending"
	KindAlreadyPrivileged Kind = "already_privileged"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindStore             Kind = "store"
)

// Error is a failure with a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying error, typically a
// document-store failure.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error        { return New(KindValidation, message) }
func NotFound(message string) *Error          { return New(KindNotFound, message) }
func AlreadyProcessed(message string) *Error  { return New(KindAlreadyProcessed, message) }
func DuplicatePending(message string) *Error  { return New(KindDuplicatePending, message) }
func AlreadyPrivileged(message string) *Error { return New(KindAlreadyPrivileged, message) }
func Store(message string, err error) *Error  { return Wrap(KindStore, message, err) }

// KindOf returns the kind of err, or KindStore for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// Message returns the human-readable message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error kind to the status code the API returns for it.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindAlreadyProcessed, KindDuplicatePending, KindAlreadyPrivileged:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
