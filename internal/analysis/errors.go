package analysis

import (
	"errors"
	"net/http"

	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/Most2022/smartpdf/internal/projects"
)

// Domain errors for analysis operations.
var (
	ErrUnavailable      = errors.New("analysis is not configured")
	ErrGenerationFailed = errors.New("analysis generation failed")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrGenerationFailed):
		return http.StatusBadGateway
	case errors.Is(err, pages.ErrNotFound):
		return http.StatusNotFound
	default:
		return projects.MapHTTPStatus(err)
	}
}
