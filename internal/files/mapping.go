package files

import (
	"github.com/Most2022/smartpdf/pkg/query"
	"github.com/Most2022/smartpdf/pkg/repository"
)

var projection = query.NewProjectionMap("public", "files", "f").
	Project("id", "ID").
	Project("project_id", "ProjectID").
	Project("filename", "Filename").
	Project("size_bytes", "SizeBytes").
	Project("storage_key", "StorageKey").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: false}

func scanFile(s repository.Scanner) (File, error) {
	var f File
	err := s.Scan(
		&f.ID,
		&f.ProjectID,
		&f.Filename,
		&f.SizeBytes,
		&f.StorageKey,
		&f.CreatedAt,
	)
	return f, err
}
