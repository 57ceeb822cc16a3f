// internal/app/system/backend/errors.go
package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors matched with errors.Is against an *APIError.
var (
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrNotFound     = errors.New("backend: not found")
)

// APIError is a non-2xx response from the backend. Message is the
// backend-provided message, or empty when the body carried none.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("backend %s: %d %s", e.Path, e.Status, msg)
}

// Unwrap lets errors.Is see ErrUnauthorized / ErrNotFound.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// StatusOf returns the backend status carried by err, or 500 for
// transport failures and anything else.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) && ae.Status >= 400 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the backend message carried by err, or fallback.
func MessageOf(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
