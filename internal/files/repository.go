package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Most2022/smartpdf/internal/storage"
	"github.com/Most2022/smartpdf/pkg/query"
	"github.com/Most2022/smartpdf/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db      *sql.DB
	storage storage.System
	logger  *slog.Logger
}

// New creates a file repository with database and blob storage integration.
func New(db *sql.DB, storage storage.System, logger *slog.Logger) System {
	return &repo{
		db:      db,
		storage: storage,
		logger:  logger.With("system", "files"),
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*File, error) {
	id := uuid.New()
	storageKey := BuildStorageKey(cmd.ProjectID, id)

	if err := r.storage.Store(ctx, storageKey, cmd.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	q := `INSERT INTO files (id, project_id, filename, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, project_id, filename, size_bytes, storage_key, created_at`

	f, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (File, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.ProjectID, cmd.Filename, int64(len(cmd.Data)), storageKey,
		}, scanFile)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, storageKey); delErr != nil {
			r.logger.Error("cleanup failed after db error", "storage_key", storageKey, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("file created", "id", f.ID, "project_id", f.ProjectID, "size_bytes", f.SizeBytes)
	return &f, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*File, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) Data(ctx context.Context, id uuid.UUID) ([]byte, error) {
	f, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := r.storage.Retrieve(ctx, f.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("retrieve file: %w", err)
	}

	return data, nil
}

func (r *repo) ListForProject(ctx context.Context, projectID uuid.UUID) ([]File, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("ProjectID", projectID).
		BuildAll()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanFile)
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	return records, nil
}

// DeleteAllForProject scans for every record owned by the project and
// removes each one along with its blob. Project deletion is the only
// path that removes file records, so the scan cost is acceptable.
func (r *repo) DeleteAllForProject(ctx context.Context, projectID uuid.UUID) error {
	records, err := r.ListForProject(ctx, projectID)
	if err != nil {
		return err
	}

	for _, f := range records {
		if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM files WHERE id = $1`, f.ID); err != nil {
			return fmt.Errorf("delete file %s: %w", f.ID, err)
		}

		if err := r.storage.Delete(ctx, f.StorageKey); err != nil {
			r.logger.Warn("blob cleanup failed", "storage_key", f.StorageKey, "error", err)
		}
	}

	if len(records) > 0 {
		r.logger.Info("files deleted for project", "project_id", projectID, "count", len(records))
	}
	return nil
}

// InsertAll inserts file records as-is. Used by the ingestion pipeline
// inside its batch transaction; the blobs are stored before the
// transaction begins.
func InsertAll(ctx context.Context, q repository.Querier, records []File) error {
	for _, f := range records {
		_, err := q.ExecContext(ctx,
			`INSERT INTO files (id, project_id, filename, size_bytes, storage_key, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)`,
			f.ID, f.ProjectID, f.Filename, f.SizeBytes, f.StorageKey, f.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert file %s: %w", f.ID, err)
		}
	}
	return nil
}
