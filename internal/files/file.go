// Package files provides the binary store for uploaded source PDFs.
// Each record associates an immutable byte buffer in blob storage with
// the project that owns it; pages reference records by id without owning
// them, so records are only removed by the project-deletion cascade.
package files

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// File represents an uploaded source document. The raw bytes live in blob
// storage under StorageKey and are never mutated after creation.
type File struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCommand contains the data required to register a new source document.
// Data holds the raw file bytes to be stored.
type CreateCommand struct {
	ProjectID uuid.UUID
	Filename  string
	Data      []byte
}

// BuildStorageKey returns the blob storage key for a source document.
func BuildStorageKey(projectID, fileID uuid.UUID) string {
	return fmt.Sprintf("files/%s/%s.pdf", projectID, fileID)
}
