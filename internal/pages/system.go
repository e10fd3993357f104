package pages

import (
	"context"

	"github.com/google/uuid"
)

// System defines the page collection operations. Mutations to a single
// project are serialized through a per-project lock so concurrent
// position rewrites cannot interleave.
type System interface {
	// List returns a project's pages ordered by position.
	List(ctx context.Context, projectID uuid.UUID) ([]Page, error)

	// Count returns the number of pages in a project.
	Count(ctx context.Context, projectID uuid.UUID) (int, error)

	// StarredCount returns the number of starred pages in a project.
	StarredCount(ctx context.Context, projectID uuid.UUID) (int, error)

	// ToggleStar flips the starred flag of the page at the given position
	// and returns the updated page.
	ToggleStar(ctx context.Context, projectID uuid.UUID, position int) (*Page, error)

	// Remove deletes the page at the given position and shifts every
	// higher position down by one. The source document record is left
	// untouched.
	Remove(ctx context.Context, projectID uuid.UUID, position int) error

	// Reorder rewrites page positions to match the given id order. The
	// ids must be exactly the project's pages or ErrInvalidOrder is
	// returned and nothing changes.
	Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error

	// Thumbnail returns the raster bytes and content type for a page.
	Thumbnail(ctx context.Context, pageID uuid.UUID) ([]byte, string, error)

	// DeleteAllForProject removes every page owned by a project along
	// with its thumbnail blob. Part of the project-deletion cascade.
	DeleteAllForProject(ctx context.Context, projectID uuid.UUID) error
}
