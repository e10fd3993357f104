// Package render abstracts page rasterization behind a narrow interface
// so the ingestion pipeline can be exercised without a rendering backend.
package render

import "context"

// Raster is a rendered page image with its pixel dimensions.
type Raster struct {
	Data   []byte
	Width  int
	Height int
}

// Document provides page-by-page rasterization of an opened source file.
// Page numbers are 1-based.
type Document interface {
	PageCount() int
	Render(pageNum int) (Raster, error)
	Close() error
}

// Engine opens source files for rasterization.
type Engine interface {
	Open(ctx context.Context, path, contentType string) (Document, error)
}
