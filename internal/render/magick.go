package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	dcimage "github.com/JaimeStill/document-context/pkg/image"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrUnsupportedFormat indicates a content type that cannot be rasterized.
var ErrUnsupportedFormat = errors.New("render: unsupported content type")

type magickEngine struct {
	format document.ImageFormat
	dpi    int
}

// NewEngine creates the production rasterization engine backed by
// ImageMagick. Format is "png" or "jpg".
func NewEngine(dpi int, format string) (Engine, error) {
	parsed, err := document.ParseImageFormat(format)
	if err != nil {
		return nil, err
	}
	return &magickEngine{format: parsed, dpi: dpi}, nil
}

func (e *magickEngine) Open(ctx context.Context, path, contentType string) (Document, error) {
	if contentType != "application/pdf" {
		return nil, ErrUnsupportedFormat
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	doc, err := document.Open(path, contentType)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	renderer, err := dcimage.NewImageMagickRenderer(e.imageConfig())
	if err != nil {
		doc.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &magickDocument{
		doc:       doc,
		renderer:  renderer,
		pageCount: count,
	}, nil
}

func (e *magickEngine) imageConfig() config.ImageConfig {
	cfg := config.ImageConfig{
		Format:  string(e.format),
		DPI:     e.dpi,
		Options: make(map[string]any),
	}
	if e.format == document.JPEG {
		cfg.Quality = 90
	}
	return cfg
}

type magickDocument struct {
	doc       document.Document
	renderer  dcimage.Renderer
	pageCount int
}

func (d *magickDocument) PageCount() int {
	return d.pageCount
}

func (d *magickDocument) Render(pageNum int) (Raster, error) {
	page, err := d.doc.ExtractPage(pageNum)
	if err != nil {
		return Raster{}, fmt.Errorf("extract page %d: %w", pageNum, err)
	}

	data, err := page.ToImage(d.renderer, nil)
	if err != nil {
		return Raster{}, fmt.Errorf("render page %d: %w", pageNum, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Raster{}, fmt.Errorf("decode page %d raster: %w", pageNum, err)
	}

	return Raster{Data: data, Width: cfg.Width, Height: cfg.Height}, nil
}

func (d *magickDocument) Close() error {
	return d.doc.Close()
}
