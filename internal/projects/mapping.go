package projects

import (
	"net/url"

	"github.com/Most2022/smartpdf/pkg/query"
	"github.com/Most2022/smartpdf/pkg/repository"
)

var projection = query.NewProjectionMap("public", "projects", "pr").
	Project("id", "ID").
	Project("name", "Name").
	Project("subject", "Subject").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Project("(SELECT COUNT(*) FROM public.pages x WHERE x.project_id = pr.id)", "PageCount")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanProject(s repository.Scanner) (Project, error) {
	var p Project
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Subject,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.PageCount,
	)
	return p, err
}

// Filters contains optional criteria for filtering project queries.
type Filters struct {
	Name    *string
	Subject *Subject
}

// FiltersFromQuery extracts project filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if s := values.Get("subject"); s != "" {
		if subject, err := ParseSubject(s); err == nil {
			f.Subject = &subject
		}
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b = b.WhereContains("Name", f.Name)
	if f.Subject != nil {
		b = b.WhereEquals("Subject", string(*f.Subject))
	}
	return b
}
