package client

import (
	"errors"
	"fmt"
)

// Failure classes. Every error returned by Client matches exactly one of them with errors.Is.
var (
	ErrNetworkFailure    = errors.New("network failure")
	ErrValidationFailure = errors.New("validation failure")
	ErrNotFound          = errors.New("not found")
)

// APIError describes a failed call. Message is the server's "error" field, empty when the server
// sent none.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string

	kind  error
	cause error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Path, e.kind, e.cause)
	case e.Message != "":
		return fmt.Sprintf("%s %s failed with status code %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s %s failed with status code %d", e.Method, e.Path, e.StatusCode)
	}
}

func (e *APIError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// classify maps an HTTP status to a failure class.
func classify(statusCode int) error {
	switch {
	case statusCode == 404:
		return ErrNotFound
	case statusCode >= 500:
		return ErrNetworkFailure
	default:
		return ErrValidationFailure
	}
}

// Message returns the server-provided message carried by err, or fallback when there is none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
