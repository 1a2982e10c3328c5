package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is a delivery-level error carrying the status code to answer with.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError builds an HTTPError. When code is a valid HTTP status it is
// also used as the response status, otherwise the status is 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 100 && code <= 599 {
		status = code
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

var (
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
