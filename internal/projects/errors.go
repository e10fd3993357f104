package projects

import (
	"errors"
	"net/http"
)

// Domain errors for project operations.
var (
	ErrNotFound       = errors.New("project not found")
	ErrDuplicate      = errors.New("project already exists")
	ErrInvalidName    = errors.New("project name is required")
	ErrInvalidSubject = errors.New("invalid subject")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidName) || errors.Is(err, ErrInvalidSubject) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
