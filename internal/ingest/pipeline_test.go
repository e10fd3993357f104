package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Most2022/smartpdf/internal/projects"
	"github.com/Most2022/smartpdf/internal/render"
	"github.com/Most2022/smartpdf/internal/storage"
	"github.com/Most2022/smartpdf/pkg/locks"
	"github.com/Most2022/smartpdf/pkg/pagination"
	"github.com/google/uuid"
)

type memStorage struct {
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (m *memStorage) Start() error { return nil }

func (m *memStorage) Store(ctx context.Context, key string, data []byte) error {
	m.blobs[key] = data
	return nil
}

func (m *memStorage) Retrieve(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	delete(m.blobs, key)
	return nil
}

func (m *memStorage) Validate(ctx context.Context, key string) (bool, error) {
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memStorage) Path(ctx context.Context, key string) (string, error) {
	if _, ok := m.blobs[key]; !ok {
		return "", storage.ErrNotFound
	}
	return key, nil
}

type fakeEngine struct {
	pageCount int
	openErr   error
	renderErr map[int]error
}

func (e *fakeEngine) Open(ctx context.Context, path, contentType string) (render.Document, error) {
	if e.openErr != nil {
		return nil, e.openErr
	}
	return &fakeDocument{engine: e}, nil
}

type fakeDocument struct {
	engine *fakeEngine
}

func (d *fakeDocument) PageCount() int { return d.engine.pageCount }

func (d *fakeDocument) Render(pageNum int) (render.Raster, error) {
	if err := d.engine.renderErr[pageNum]; err != nil {
		return render.Raster{}, err
	}
	return render.Raster{
		Data:   fmt.Appendf(nil, "raster-%d", pageNum),
		Width:  800,
		Height: 1100,
	}, nil
}

func (d *fakeDocument) Close() error { return nil }

type stubProjects struct {
	id uuid.UUID
}

func (s *stubProjects) List(ctx context.Context, page pagination.PageRequest, filters projects.Filters) (*pagination.PageResult[projects.Project], error) {
	return nil, errors.New("not implemented")
}

func (s *stubProjects) Find(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	if id != s.id {
		return nil, projects.ErrNotFound
	}
	return &projects.Project{ID: id, Name: "Test", Subject: projects.SubjectMath}, nil
}

func (s *stubProjects) Create(ctx context.Context, cmd projects.CreateCommand) (*projects.Project, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProjects) Update(ctx context.Context, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProjects) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pdfBytes(label string) []byte {
	return fmt.Appendf(nil, "%%PDF-1.7\n%s", label)
}

func newTestPipeline(store *memStorage, engine *fakeEngine, projectID uuid.UUID) *pipeline {
	sys := New(nil, store, engine, &stubProjects{id: projectID}, locks.NewKeyedMutex(), testLogger(), "png")
	return sys.(*pipeline)
}

func TestIngest_RejectsEmptyBatch(t *testing.T) {
	p := newTestPipeline(newMemStorage(), &fakeEngine{pageCount: 1}, uuid.New())

	_, err := p.Ingest(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrNoFiles) {
		t.Errorf("Ingest() error = %v, want ErrNoFiles", err)
	}
}

func TestIngest_RejectsUnknownProject(t *testing.T) {
	projectID := uuid.New()
	p := newTestPipeline(newMemStorage(), &fakeEngine{pageCount: 1}, projectID)

	_, err := p.Ingest(context.Background(), uuid.New(), []Upload{
		{Filename: "a.pdf", Data: pdfBytes("a")},
	})
	if !errors.Is(err, projects.ErrNotFound) {
		t.Errorf("Ingest() error = %v, want project not found", err)
	}
}

func TestIngest_RejectsNonPDF(t *testing.T) {
	projectID := uuid.New()
	p := newTestPipeline(newMemStorage(), &fakeEngine{pageCount: 1}, projectID)

	_, err := p.Ingest(context.Background(), projectID, []Upload{
		{Filename: "notes.txt", Data: []byte("plain text")},
	})
	if !errors.Is(err, ErrInvalidFile) {
		t.Errorf("Ingest() error = %v, want ErrInvalidFile", err)
	}
}

func TestIngest_RenderFailureCleansUpBlobs(t *testing.T) {
	projectID := uuid.New()
	store := newMemStorage()
	engine := &fakeEngine{
		pageCount: 3,
		renderErr: map[int]error{2: errors.New("imagemagick exploded")},
	}
	p := newTestPipeline(store, engine, projectID)

	_, err := p.Ingest(context.Background(), projectID, []Upload{
		{Filename: "a.pdf", Data: pdfBytes("a")},
	})
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("Ingest() error = %v, want ErrRenderFailed", err)
	}

	if len(store.blobs) != 0 {
		t.Errorf("storage has %d blobs after failed batch, want 0", len(store.blobs))
	}
}

func TestIngest_OpenFailureCleansUpEarlierUploads(t *testing.T) {
	projectID := uuid.New()
	store := newMemStorage()
	engine := &fakeEngine{openErr: errors.New("corrupt pdf")}
	p := newTestPipeline(store, engine, projectID)

	_, err := p.Ingest(context.Background(), projectID, []Upload{
		{Filename: "a.pdf", Data: pdfBytes("a")},
		{Filename: "b.pdf", Data: pdfBytes("b")},
	})
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("Ingest() error = %v, want ErrRenderFailed", err)
	}

	if len(store.blobs) != 0 {
		t.Errorf("storage has %d blobs after failed batch, want 0", len(store.blobs))
	}
}

func TestRasterize_DocumentOrder(t *testing.T) {
	projectID := uuid.New()
	store := newMemStorage()
	store.blobs["doc.pdf"] = pdfBytes("doc")
	p := newTestPipeline(store, &fakeEngine{pageCount: 5}, projectID)

	rasters, err := p.rasterize(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("rasterize() error: %v", err)
	}

	if len(rasters) != 5 {
		t.Fatalf("rasterize() returned %d rasters, want 5", len(rasters))
	}
	for i, raster := range rasters {
		want := fmt.Sprintf("raster-%d", i+1)
		if string(raster.Data) != want {
			t.Errorf("rasters[%d] = %q, want %q", i, raster.Data, want)
		}
	}
}

func TestRasterize_EmptyDocument(t *testing.T) {
	p := newTestPipeline(newMemStorage(), &fakeEngine{pageCount: 0}, uuid.New())

	_, err := p.rasterize(context.Background(), "doc.pdf")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("rasterize() error = %v, want ErrEmptyDocument", err)
	}
}
