package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests")
	ErrNoToken         = errors.New("not logged in")
)

// APIError is a non-2xx answer from the backend. Message is taken from the
// body's "message" or "error" field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrTooManyRequests:
		return e.Status == http.StatusTooManyRequests
	}
	return false
}

// Message collapses err into the one line the user sees.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.As(err, &apiErr):
		return http.StatusText(apiErr.Status)
	case errors.Is(err, ErrUnavailable):
		return "Something went wrong. Please try again later."
	case errors.Is(err, ErrNoToken):
		return "You must be logged in."
	default:
		return err.Error()
	}
}
