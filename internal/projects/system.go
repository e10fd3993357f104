package projects

import (
	"context"

	"github.com/Most2022/smartpdf/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the project store operations.
type System interface {
	// List returns a page of projects matching the filters, newest first
	// by default. Page counts are included; page records are not.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Project], error)

	// Find returns a project with its ordered pages, or ErrNotFound.
	Find(ctx context.Context, id uuid.UUID) (*Project, error)

	// Create validates and persists a new project.
	Create(ctx context.Context, cmd CreateCommand) (*Project, error)

	// Update applies the non-nil fields of cmd to a project.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Project, error)

	// Delete removes a project and cascades to its pages, file records,
	// and all associated blobs.
	Delete(ctx context.Context, id uuid.UUID) error
}
