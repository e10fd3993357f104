// Package ingest turns uploaded PDF batches into project pages: each
// document's bytes are stored, every page is rasterized into a thumbnail,
// and page records are appended to the project's sequence in document
// order and upload order. A batch is all-or-nothing: any failure cleans
// up written blobs and commits no rows.
package ingest

import (
	"context"

	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/google/uuid"
)

// Upload is one PDF in an ingestion batch.
type Upload struct {
	Filename string
	Data     []byte
}

// System defines the ingestion operation.
type System interface {
	// Ingest processes a batch of uploads for a project and returns the
	// created pages in sequence order.
	Ingest(ctx context.Context, projectID uuid.UUID, uploads []Upload) ([]pages.Page, error)
}
