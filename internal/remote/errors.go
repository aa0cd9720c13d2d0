package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error that occurred during a remote call
type Kind string

const (
	// KindNetwork indicates a transport-level error (connection refused, DNS,
	// timeout, malformed response body)
	KindNetwork Kind = "network"
	// KindServer indicates the backend answered with a non-success status
	KindServer Kind = "server"
	// KindValidation indicates a client-side precondition failed before any
	// request was issued
	KindValidation Kind = "validation"
)

// Error is the only error type this package returns. Every failure path of a
// remote call is normalized into it; nothing panics past the client boundary.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error carrying the transport failure
func NewNetworkError(cause error) *Error {
	message := "network request failed"
	if cause != nil {
		message = cause.Error()
	}
	return &Error{
		Kind:    KindNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewServerError creates a server error. The detail is the server-supplied
// message when one was present in the response, else a generic status message.
func NewServerError(statusCode int, detail string) *Error {
	if detail == "" {
		detail = fmt.Sprintf("server returned HTTP %d", statusCode)
	}
	return &Error{
		Kind:       KindServer,
		StatusCode: statusCode,
		Message:    detail,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

// FailureMessage extracts the user-facing message from an error returned by
// this package, falling back to the full error text for anything else.
func FailureMessage(err error) string {
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a server error with status 404
func IsNotFound(err error) bool {
	var remoteErr *Error
	return errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusNotFound
}
