package files

import (
	"context"

	"github.com/google/uuid"
)

// System defines the binary store operations. Implementations persist
// record metadata in the database and raw bytes in blob storage.
type System interface {
	// Create registers a new source document and stores its bytes.
	Create(ctx context.Context, cmd CreateCommand) (*File, error)

	// Find returns the record for a file id, or ErrNotFound.
	Find(ctx context.Context, id uuid.UUID) (*File, error)

	// Data returns the raw stored bytes for a file id, or ErrNotFound.
	// Callers treat a missing file as recoverable: an export skips pages
	// whose source document is gone.
	Data(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ListForProject returns every record owned by a project.
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]File, error)

	// DeleteAllForProject removes every record owned by a project along
	// with its stored bytes. Part of the project-deletion cascade; after
	// it returns no record for the project remains.
	DeleteAllForProject(ctx context.Context, projectID uuid.UUID) error
}
