package models

import (
	"errors"
	"fmt"
)

// Error constants for client operations
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrExchangeRejected = errors.New("session exchange rejected")
	ErrNotFound         = errors.New("not found")
	ErrCodeAlreadyUsed  = errors.New("activation code invalid or already used")
	ErrNoActiveSession  = errors.New("no active session")
	ErrExchangeInFlight = errors.New("session exchange already in progress")
)

// APIError is a non-2xx response from the server that does not map to one
// of the sentinel errors above.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}
