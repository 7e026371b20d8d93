package client

import (
	"errors"
	"net/http"
)

var (
	ErrBaseURLNotSet   = errors.New("api base url is not set")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionExpired  = errors.New("session expired")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("server unavailable")
	ErrInvalidResponse = errors.New("invalid json response")
)

// APIError is the uniform error for non-2xx responses.
type APIError struct {
	Message string
	Status  int

	sessionExpired bool
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets errors.Is match an APIError against the package sentinels by status.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrSessionExpired:
		return e.sessionExpired
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		return e.Status == http.StatusBadGateway ||
			e.Status == http.StatusServiceUnavailable ||
			e.Status == http.StatusGatewayTimeout
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
