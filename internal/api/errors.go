package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError means the request never got a usable answer: the backend was
// unreachable, the connection broke, or the request timed out.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request ran out of time
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// BackendError means the backend answered with a non-success status, or with
// a body that could not be decoded.
type BackendError struct {
	Op         string
	StatusCode int
	Message    string // message reported by the backend, if any
	Err        error
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsBackend reports whether err is a BackendError
func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// StatusCode returns the HTTP status carried by a BackendError, or 0
func StatusCode(err error) int {
	var be *BackendError
	if errors.As(err, &be) {
		return be.StatusCode
	}
	return 0
}

// Message returns the backend's own message for err, falling back to fallback
func Message(err error, fallback string) string {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
