package ingest

import (
	"errors"
	"net/http"

	"github.com/Most2022/smartpdf/internal/projects"
)

// Domain errors for ingestion operations.
var (
	ErrNoFiles       = errors.New("no files provided")
	ErrInvalidFile   = errors.New("invalid or unreadable file")
	ErrFileTooLarge  = errors.New("file exceeds maximum upload size")
	ErrRenderFailed  = errors.New("page rendering failed")
	ErrEmptyDocument = errors.New("document has no pages")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoFiles), errors.Is(err, ErrInvalidFile), errors.Is(err, ErrEmptyDocument):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrRenderFailed):
		return http.StatusUnprocessableEntity
	default:
		// Project lookup errors surface through the batch call.
		return projects.MapHTTPStatus(err)
	}
}
