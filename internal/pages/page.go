// Package pages manages the ordered page collection of a project. Every
// page references the source document it was extracted from and carries a
// rasterized thumbnail in blob storage. Position is the single source of
// truth for sequence order within a project.
package pages

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Page represents a single extracted page within a project's sequence.
// PageIndex is the 0-based index of the page within its source document;
// Position is the 0-based order of the page within the project.
type Page struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	FileID       uuid.UUID `json:"file_id"`
	PageIndex    int       `json:"page_index"`
	Position     int       `json:"position"`
	ThumbnailKey string    `json:"thumbnail_key"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	IsStarred    bool      `json:"is_starred"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildThumbnailKey returns the blob storage key for a page thumbnail.
// The extension matches the configured raster format.
func BuildThumbnailKey(projectID, pageID uuid.UUID, format string) string {
	return fmt.Sprintf("thumbnails/%s/%s.%s", projectID, pageID, format)
}

// ThumbnailContentType derives the MIME type for a thumbnail from its
// storage key extension.
func ThumbnailContentType(key string) string {
	switch filepath.Ext(key) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// ClampSelection adjusts a selected position after the collection has
// changed size, keeping it within [0, count-1]. A count of zero yields -1,
// meaning no selection.
func ClampSelection(position, count int) int {
	if count == 0 {
		return -1
	}
	if position < 0 {
		return 0
	}
	if position >= count {
		return count - 1
	}
	return position
}
