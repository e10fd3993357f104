package pages

import (
	"errors"
	"net/http"
)

// Domain errors for page operations.
var (
	ErrNotFound     = errors.New("page not found")
	ErrDuplicate    = errors.New("page position already occupied")
	ErrInvalidOrder = errors.New("ordered ids do not match the project's pages")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidOrder) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
