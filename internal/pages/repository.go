package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Most2022/smartpdf/internal/storage"
	"github.com/Most2022/smartpdf/pkg/locks"
	"github.com/Most2022/smartpdf/pkg/query"
	"github.com/Most2022/smartpdf/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db      *sql.DB
	storage storage.System
	locks   *locks.KeyedMutex
	logger  *slog.Logger
}

// New creates a page repository. The keyed mutex is shared with the
// ingestion pipeline so all position mutations for a project serialize.
func New(db *sql.DB, storage storage.System, locks *locks.KeyedMutex, logger *slog.Logger) System {
	return &repo{
		db:      db,
		storage: storage,
		locks:   locks,
		logger:  logger.With("system", "pages"),
	}
}

func (r *repo) List(ctx context.Context, projectID uuid.UUID) ([]Page, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("ProjectID", projectID).
		BuildAll()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	return records, nil
}

func (r *repo) Count(ctx context.Context, projectID uuid.UUID) (int, error) {
	q, args := query.NewBuilder(projection).
		WhereEquals("ProjectID", projectID).
		BuildCount()

	var count int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return count, nil
}

func (r *repo) StarredCount(ctx context.Context, projectID uuid.UUID) (int, error) {
	q, args := query.NewBuilder(projection).
		WhereEquals("ProjectID", projectID).
		WhereEquals("IsStarred", true).
		BuildCount()

	var count int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count starred pages: %w", err)
	}
	return count, nil
}

func (r *repo) ToggleStar(ctx context.Context, projectID uuid.UUID, position int) (*Page, error) {
	unlock := r.locks.Lock(projectID.String())
	defer unlock()

	q := `UPDATE pages SET is_starred = NOT is_starred
		WHERE project_id = $1 AND position = $2
		RETURNING id, project_id, file_id, page_index, position,
			thumbnail_key, width, height, is_starred, created_at`

	p, err := repository.QueryOne(ctx, r.db, q, []any{projectID, position}, scanPage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("page star toggled", "id", p.ID, "position", p.Position, "is_starred", p.IsStarred)
	return &p, nil
}

func (r *repo) Remove(ctx context.Context, projectID uuid.UUID, position int) error {
	unlock := r.locks.Lock(projectID.String())
	defer unlock()

	type removed struct {
		id           uuid.UUID
		thumbnailKey string
	}

	rec, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (removed, error) {
		var rec removed
		err := tx.QueryRowContext(ctx,
			`DELETE FROM pages WHERE project_id = $1 AND position = $2
				RETURNING id, thumbnail_key`,
			projectID, position,
		).Scan(&rec.id, &rec.thumbnailKey)
		if err != nil {
			return rec, err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE pages SET position = position - 1
				WHERE project_id = $1 AND position > $2`,
			projectID, position,
		)
		return rec, err
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, rec.thumbnailKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		r.logger.Warn("thumbnail cleanup failed", "storage_key", rec.thumbnailKey, "error", err)
	}

	r.logger.Info("page removed", "id", rec.id, "project_id", projectID, "position", position)
	return nil
}

func (r *repo) Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	unlock := r.locks.Lock(projectID.String())
	defer unlock()

	current, err := r.List(ctx, projectID)
	if err != nil {
		return err
	}

	if !samePageSet(current, orderedIDs) {
		return ErrInvalidOrder
	}

	// The unique (project_id, position) constraint is deferred, so the
	// rewrites only need to be consistent at commit.
	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		for position, id := range orderedIDs {
			err := repository.ExecExpectOne(ctx, tx,
				`UPDATE pages SET position = $1 WHERE id = $2 AND project_id = $3`,
				position, id, projectID,
			)
			if err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("pages reordered", "project_id", projectID, "count", len(orderedIDs))
	return nil
}

func (r *repo) Thumbnail(ctx context.Context, pageID uuid.UUID) ([]byte, string, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", pageID)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, "", repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	data, err := r.storage.Retrieve(ctx, p.ThumbnailKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("retrieve thumbnail: %w", err)
	}

	return data, ThumbnailContentType(p.ThumbnailKey), nil
}

func (r *repo) DeleteAllForProject(ctx context.Context, projectID uuid.UUID) error {
	unlock := r.locks.Lock(projectID.String())
	defer unlock()

	records, err := r.List(ctx, projectID)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("delete pages: %w", err)
	}

	for _, p := range records {
		if err := r.storage.Delete(ctx, p.ThumbnailKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("thumbnail cleanup failed", "storage_key", p.ThumbnailKey, "error", err)
		}
	}

	if len(records) > 0 {
		r.logger.Info("pages deleted for project", "project_id", projectID, "count", len(records))
	}
	return nil
}

func samePageSet(current []Page, orderedIDs []uuid.UUID) bool {
	if len(current) != len(orderedIDs) {
		return false
	}

	existing := make(map[uuid.UUID]bool, len(current))
	for _, p := range current {
		existing[p.ID] = true
	}

	seen := make(map[uuid.UUID]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !existing[id] || seen[id] {
			return false
		}
		seen[id] = true
	}

	return true
}

// NextPosition returns the append position for new pages in a project.
// Callers run it inside the same transaction as the inserts it feeds.
func NextPosition(ctx context.Context, q repository.Querier, projectID uuid.UUID) (int, error) {
	var next int
	err := q.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM pages WHERE project_id = $1`,
		projectID,
	).Scan(&next)
	return next, err
}

// InsertAll inserts page rows as-is, preserving the positions already
// assigned to them. Used by the ingestion pipeline inside its batch
// transaction.
func InsertAll(ctx context.Context, q repository.Querier, records []Page) error {
	for _, p := range records {
		_, err := q.ExecContext(ctx,
			`INSERT INTO pages (id, project_id, file_id, page_index, position,
				thumbnail_key, width, height, is_starred, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.ID, p.ProjectID, p.FileID, p.PageIndex, p.Position,
			p.ThumbnailKey, p.Width, p.Height, p.IsStarred, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert page %s: %w", p.ID, err)
		}
	}
	return nil
}
