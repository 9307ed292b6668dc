package sdk

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response. Message is the server's {"message"} field
// and may be empty when the body could not be decoded.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portfolio api: status %d", e.Status)
	}
	return fmt.Sprintf("portfolio api: status %d: %s", e.Status, e.Message)
}

// ErrorMessage returns the server-provided message carried by err, or
// fallback when err is a transport or decoding failure.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
