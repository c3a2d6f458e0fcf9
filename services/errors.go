package services

import (
	"errors"
	"net/http"
)

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// statuses at the request boundary; anything unrecognized is a dependency
// failure and surfaces as a generic 500.
var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrDuplicate  = errors.New("resource already exists")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

// HTTPStatusFromError maps service errors to HTTP status codes
func HTTPStatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
