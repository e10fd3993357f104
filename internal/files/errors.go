package files

import (
	"errors"
	"net/http"
)

// Domain errors for file operations.
var (
	ErrNotFound  = errors.New("file not found")
	ErrDuplicate = errors.New("file storage key already exists")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
