package projects_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Most2022/smartpdf/internal/projects"
	"github.com/Most2022/smartpdf/pkg/pagination"
	"github.com/google/uuid"
)

var handlerPagination = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

type stubStore struct {
	listResult *pagination.PageResult[projects.Project]
	listErr    error
}

func (s *stubStore) List(ctx context.Context, page pagination.PageRequest, filters projects.Filters) (*pagination.PageResult[projects.Project], error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResult, nil
}

func (s *stubStore) Find(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	return nil, projects.ErrNotFound
}

func (s *stubStore) Create(ctx context.Context, cmd projects.CreateCommand) (*projects.Project, error) {
	return nil, projects.ErrInvalidName
}

func (s *stubStore) Update(ctx context.Context, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
	return nil, projects.ErrNotFound
}

func (s *stubStore) Delete(ctx context.Context, id uuid.UUID) error {
	return projects.ErrNotFound
}

func newTestHandler(store *stubStore) *projects.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return projects.NewHandler(store, logger, handlerPagination)
}

func decodePage(t *testing.T, body io.Reader) pagination.PageResult[projects.Project] {
	t.Helper()
	var result pagination.PageResult[projects.Project]
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return result
}

func TestListServesResults(t *testing.T) {
	page := pagination.NewPageResult([]projects.Project{
		{ID: uuid.New(), Name: "Wave Optics", Subject: projects.SubjectPhysics},
	}, 1, 1, 20)
	handler := newTestHandler(&stubStore{listResult: &page})

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest("GET", "/projects", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	result := decodePage(t, rec.Body)
	if len(result.Data) != 1 || result.Total != 1 {
		t.Errorf("got %d results (total %d), want 1 (total 1)", len(result.Data), result.Total)
	}
}

func TestListDegradesOnStoreFailure(t *testing.T) {
	handler := newTestHandler(&stubStore{listErr: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest("GET", "/projects", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	result := decodePage(t, rec.Body)
	if result.Data == nil || len(result.Data) != 0 {
		t.Errorf("data = %v, want empty slice", result.Data)
	}
	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
	if result.Page != 1 || result.PageSize != handlerPagination.DefaultPageSize {
		t.Errorf("page = %d size = %d, want normalized defaults", result.Page, result.PageSize)
	}
}

func TestSearchDegradesOnStoreFailure(t *testing.T) {
	handler := newTestHandler(&stubStore{listErr: errors.New("connection refused")})

	body := strings.NewReader(`{"page": 2, "page_size": 10}`)
	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest("POST", "/projects/search", body))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	result := decodePage(t, rec.Body)
	if len(result.Data) != 0 || result.Total != 0 {
		t.Errorf("got %d results (total %d), want empty", len(result.Data), result.Total)
	}
	if result.Page != 2 || result.PageSize != 10 {
		t.Errorf("page = %d size = %d, want requested 2/10", result.Page, result.PageSize)
	}
}
