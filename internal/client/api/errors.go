package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the request never produced a usable response:
	// connectivity failure, timeout, or a 5xx from the backend.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized indicates the credential was missing, invalid, or
	// insufficient (HTTP 401/403). The response hook has already torn the
	// session down by the time a caller sees this.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedResponse indicates the backend answered outside its own
	// contract: an undecodable body, a missing envelope, or success=false
	// on a 2xx status.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a business-level rejection (4xx other than 401/403), carrying
// the backend's message verbatim for display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request rejected (status %d)", e.Status)
	}
	return e.Message
}

// IsValidation reports whether err is a business-level rejection carrying
// a server message, as opposed to a transport or authorization failure.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
