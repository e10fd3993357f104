package query_test

import (
	"strings"
	"testing"

	"github.com/Most2022/smartpdf/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "users", "u").
		Project("id", "Id").
		Project("name", "Name").
		Project("email", "Email")
}

func TestProjectionMap_Table(t *testing.T) {
	pm := newTestProjection()

	if got := pm.Table(); got != "public.users u" {
		t.Errorf("Table() = %q, want %q", got, "public.users u")
	}
}

func TestProjectionMap_Column(t *testing.T) {
	pm := newTestProjection()

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"registered field", "Id", "u.id"},
		{"unknown field passes through", "whatever", "whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pm.Column(tt.field); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestProjectionMap_ExpressionPassthrough(t *testing.T) {
	pm := newTestProjection().
		Project("(SELECT COUNT(*) FROM public.orders o WHERE o.user_id = u.id)", "OrderCount")

	got := pm.Column("OrderCount")
	if strings.HasPrefix(got, "u.") {
		t.Errorf("Column() qualified an expression: %q", got)
	}
	if !strings.Contains(pm.Columns(), "SELECT COUNT(*)") {
		t.Errorf("Columns() missing expression, got %q", pm.Columns())
	}
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection())

	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.users u"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	defaultSort := query.SortField{Field: "Name"}

	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  string
		wantOffset string
	}{
		{"first page", 1, 20, "LIMIT 20", "OFFSET 0"},
		{"second page", 2, 20, "LIMIT 20", "OFFSET 20"},
		{"third page", 3, 10, "LIMIT 10", "OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), defaultSort)
			sql, _ := b.BuildPage(tt.page, tt.pageSize)

			if !strings.Contains(sql, "SELECT u.id, u.name, u.email FROM public.users u") {
				t.Errorf("BuildPage() missing select clause, got %q", sql)
			}
			if !strings.Contains(sql, "ORDER BY u.name ASC") {
				t.Errorf("BuildPage() missing order by, got %q", sql)
			}
			if !strings.Contains(sql, tt.wantLimit) || !strings.Contains(sql, tt.wantOffset) {
				t.Errorf("BuildPage() missing %q %q, got %q", tt.wantLimit, tt.wantOffset, sql)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection())

	sql, args := b.BuildSingle("Id", 42)

	if !strings.Contains(sql, "WHERE u.id = $1") {
		t.Errorf("BuildSingle() missing where clause, got %q", sql)
	}
	if len(args) != 1 || args[0] != 42 {
		t.Errorf("BuildSingle() args = %v, want [42]", args)
	}
}

func TestBuilder_WhereEquals_ParameterNumbering(t *testing.T) {
	b := query.NewBuilder(newTestProjection()).
		WhereEquals("Name", "alice").
		WhereEquals("Email", "alice@example.com")

	sql, args := b.BuildAll()

	if !strings.Contains(sql, "u.name = $1") || !strings.Contains(sql, "u.email = $2") {
		t.Errorf("BuildAll() parameter numbering wrong, got %q", sql)
	}
	if !strings.Contains(sql, " AND ") {
		t.Errorf("BuildAll() conditions not joined with AND, got %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("BuildAll() args = %v, want 2 entries", args)
	}
}

func TestBuilder_WhereContains_IgnoresEmpty(t *testing.T) {
	empty := ""
	b := query.NewBuilder(newTestProjection()).
		WhereContains("Name", nil).
		WhereContains("Email", &empty)

	sql, args := b.BuildAll()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("BuildAll() should have no conditions, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("BuildAll() args = %v, want empty", args)
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	search := "ali"
	b := query.NewBuilder(newTestProjection()).
		WhereSearch(&search, "Name", "Email")

	sql, args := b.BuildAll()

	if !strings.Contains(sql, "(u.name ILIKE $1 OR u.email ILIKE $2)") {
		t.Errorf("BuildAll() search clause wrong, got %q", sql)
	}
	if len(args) != 2 || args[0] != "%ali%" {
		t.Errorf("BuildAll() args = %v, want two %%ali%% patterns", args)
	}
}

func TestBuilder_OrderByFields_OverridesDefault(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"}).
		OrderByFields([]query.SortField{{Field: "Email", Descending: true}})

	sql, _ := b.BuildAll()

	if !strings.Contains(sql, "ORDER BY u.email DESC") {
		t.Errorf("BuildAll() order by not overridden, got %q", sql)
	}
}
