package projects

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Most2022/smartpdf/internal/files"
	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/Most2022/smartpdf/pkg/pagination"
	"github.com/Most2022/smartpdf/pkg/query"
	"github.com/Most2022/smartpdf/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	pages      pages.System
	files      files.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a project repository. The pages and files systems are used
// for the deletion cascade and for loading a project's page sequence.
func New(db *sql.DB, pages pages.System, files files.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		pages:      pages,
		files:      files,
		logger:     logger.With("system", "projects"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Project], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProject)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Project, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("ID", id)

	project, err := repository.QueryOne(ctx, r.db, q, args, scanProject)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	sequence, err := r.pages.List(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Pages = sequence

	return &project, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Project, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	subject, err := ParseSubject(string(cmd.Subject))
	if err != nil {
		return nil, err
	}

	q := `INSERT INTO projects (id, name, subject)
		VALUES ($1, $2, $3)
		RETURNING id, name, subject, created_at, updated_at, 0`

	project, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), name, subject}, scanProject)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project created", "id", project.ID, "name", project.Name, "subject", project.Subject)
	return &project, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Project, error) {
	if cmd.Name != nil {
		trimmed := strings.TrimSpace(*cmd.Name)
		if trimmed == "" {
			return nil, ErrInvalidName
		}
		cmd.Name = &trimmed
	}
	if cmd.Subject != nil {
		if _, err := ParseSubject(string(*cmd.Subject)); err != nil {
			return nil, err
		}
	}

	q := `UPDATE projects
		SET name = COALESCE($1, name), subject = COALESCE($2, subject), updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, subject, created_at, updated_at,
			(SELECT COUNT(*) FROM pages WHERE project_id = projects.id)`

	project, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Subject, id}, scanProject)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project updated", "id", project.ID, "name", project.Name)
	return &project, nil
}

// Delete cascades through owned resources before removing the project
// row: page rows with their thumbnail blobs, then file records with
// their stored bytes.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.Find(ctx, id); err != nil {
		return err
	}

	if err := r.pages.DeleteAllForProject(ctx, id); err != nil {
		return fmt.Errorf("delete pages: %w", err)
	}
	if err := r.files.DeleteAllForProject(ctx, id); err != nil {
		return fmt.Errorf("delete files: %w", err)
	}

	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project deleted", "id", id)
	return nil
}
