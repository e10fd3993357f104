package export

import (
	"errors"
	"net/http"

	"github.com/Most2022/smartpdf/internal/projects"
)

// Domain errors for export operations.
var (
	ErrEmptySelection = errors.New("no pages match the export scope")
	ErrInvalidScope   = errors.New("invalid export scope")
	ErrMergeFailed    = errors.New("merge failed")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptySelection), errors.Is(err, ErrInvalidScope):
		return http.StatusBadRequest
	case errors.Is(err, ErrMergeFailed):
		return http.StatusUnprocessableEntity
	default:
		return projects.MapHTTPStatus(err)
	}
}
