package query_test

import (
	"testing"

	"github.com/Most2022/smartpdf/pkg/query"
)

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "Name", []query.SortField{{Field: "Name"}}},
		{"single descending", "-CreatedAt", []query.SortField{{Field: "CreatedAt", Descending: true}}},
		{
			"mixed with whitespace",
			"-CreatedAt, Name",
			[]query.SortField{{Field: "CreatedAt", Descending: true}, {Field: "Name"}},
		},
		{"skips empty parts", "Name,,Email", []query.SortField{{Field: "Name"}, {Field: "Email"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.expr)

			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) = %v, want %v", tt.expr, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %v, want %v", tt.expr, i, got[i], tt.want[i])
				}
			}
		})
	}
}
