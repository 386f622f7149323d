package api

import (
	"errors"
	"fmt"
)

// Error is a non-2xx HTTP response from the server. Status carries the
// HTTP status code so callers can classify retryability.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.Status)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsClientError reports whether err is a 4xx response. Client errors are
// never retried: the request itself is wrong.
func IsClientError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 400 && apiErr.Status < 500
	}
	return false
}

// IsServerError reports whether err is a 5xx response.
func IsServerError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return false
}
