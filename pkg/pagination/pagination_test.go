package pagination_test

import (
	"net/url"
	"testing"

	"github.com/Most2022/smartpdf/pkg/pagination"
)

var testConfig = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values", 0, 0, 1, 20},
		{"negative page", -5, 10, 1, 10},
		{"oversized page size", 1, 500, 1, 100},
		{"valid values unchanged", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig)

			if req.Page != tt.wantPage || req.PageSize != tt.wantPageSize {
				t.Errorf("Normalize() = page %d size %d, want page %d size %d",
					req.Page, req.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}

	if got := req.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "10")
	values.Set("search", "mechanics")
	values.Set("sort", "-CreatedAt,Name")

	req := pagination.PageRequestFromQuery(values, testConfig)

	if req.Page != 2 || req.PageSize != 10 {
		t.Errorf("PageRequestFromQuery() = page %d size %d, want page 2 size 10", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "mechanics" {
		t.Errorf("PageRequestFromQuery() search = %v, want mechanics", req.Search)
	}
	if len(req.Sort) != 2 || !req.Sort[0].Descending {
		t.Errorf("PageRequestFromQuery() sort = %v, want descending CreatedAt then Name", req.Sort)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"even division", 100, 20, 5},
		{"remainder adds a page", 101, 20, 6},
		{"empty result still one page", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)

			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("NewPageResult() total pages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

func TestNewPageResult_NilData(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)

	if result.Data == nil {
		t.Error("NewPageResult() data is nil, want empty slice")
	}
}
