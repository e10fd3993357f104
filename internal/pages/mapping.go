package pages

import (
	"github.com/Most2022/smartpdf/pkg/query"
	"github.com/Most2022/smartpdf/pkg/repository"
)

var projection = query.NewProjectionMap("public", "pages", "p").
	Project("id", "ID").
	Project("project_id", "ProjectID").
	Project("file_id", "FileID").
	Project("page_index", "PageIndex").
	Project("position", "Position").
	Project("thumbnail_key", "ThumbnailKey").
	Project("width", "Width").
	Project("height", "Height").
	Project("is_starred", "IsStarred").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "Position", Descending: false}

func scanPage(s repository.Scanner) (Page, error) {
	var p Page
	err := s.Scan(
		&p.ID,
		&p.ProjectID,
		&p.FileID,
		&p.PageIndex,
		&p.Position,
		&p.ThumbnailKey,
		&p.Width,
		&p.Height,
		&p.IsStarred,
		&p.CreatedAt,
	)
	return p, err
}
