package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/Most2022/smartpdf/internal/files"
	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/Most2022/smartpdf/internal/projects"
	"github.com/Most2022/smartpdf/internal/render"
	"github.com/Most2022/smartpdf/internal/storage"
	"github.com/Most2022/smartpdf/pkg/locks"
	"github.com/Most2022/smartpdf/pkg/repository"
	"github.com/google/uuid"
)

type renderTask struct {
	pageNum int
	raster  render.Raster
	err     error
}

type pipeline struct {
	db       *sql.DB
	storage  storage.System
	engine   render.Engine
	projects projects.System
	locks    *locks.KeyedMutex
	logger   *slog.Logger
	format   string
}

// New creates the ingestion pipeline. The keyed mutex is shared with the
// pages system so batch appends serialize with other position mutations.
func New(
	db *sql.DB,
	storage storage.System,
	engine render.Engine,
	projects projects.System,
	locks *locks.KeyedMutex,
	logger *slog.Logger,
	format string,
) System {
	return &pipeline{
		db:       db,
		storage:  storage,
		engine:   engine,
		projects: projects,
		locks:    locks,
		logger:   logger.With("system", "ingest"),
		format:   format,
	}
}

func (p *pipeline) Ingest(ctx context.Context, projectID uuid.UUID, uploads []Upload) ([]pages.Page, error) {
	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}

	if _, err := p.projects.Find(ctx, projectID); err != nil {
		return nil, err
	}

	for _, u := range uploads {
		if len(u.Data) == 0 || http.DetectContentType(u.Data) != "application/pdf" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFile, u.Filename)
		}
	}

	unlock := p.locks.Lock(projectID.String())
	defer unlock()

	var written []string
	cleanup := func() {
		for _, key := range written {
			if err := p.storage.Delete(ctx, key); err != nil {
				p.logger.Warn("blob cleanup failed", "storage_key", key, "error", err)
			}
		}
	}

	now := time.Now().UTC()
	var fileRecords []files.File
	var pageRecords []pages.Page

	for _, u := range uploads {
		fileID := uuid.New()
		storageKey := files.BuildStorageKey(projectID, fileID)

		if err := p.storage.Store(ctx, storageKey, u.Data); err != nil {
			cleanup()
			return nil, fmt.Errorf("store upload %s: %w", u.Filename, err)
		}
		written = append(written, storageKey)

		path, err := p.storage.Path(ctx, storageKey)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("resolve upload %s: %w", u.Filename, err)
		}

		rasters, err := p.rasterize(ctx, path)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("%s: %w", u.Filename, err)
		}

		fileRecords = append(fileRecords, files.File{
			ID:         fileID,
			ProjectID:  projectID,
			Filename:   u.Filename,
			SizeBytes:  int64(len(u.Data)),
			StorageKey: storageKey,
			CreatedAt:  now,
		})

		for i, raster := range rasters {
			pageID := uuid.New()
			thumbnailKey := pages.BuildThumbnailKey(projectID, pageID, p.format)

			if err := p.storage.Store(ctx, thumbnailKey, raster.Data); err != nil {
				cleanup()
				return nil, fmt.Errorf("store thumbnail for %s: %w", u.Filename, err)
			}
			written = append(written, thumbnailKey)

			pageRecords = append(pageRecords, pages.Page{
				ID:           pageID,
				ProjectID:    projectID,
				FileID:       fileID,
				PageIndex:    i,
				ThumbnailKey: thumbnailKey,
				Width:        raster.Width,
				Height:       raster.Height,
				CreatedAt:    now,
			})
		}
	}

	created, err := repository.WithTx(ctx, p.db, func(tx *sql.Tx) ([]pages.Page, error) {
		next, err := pages.NextPosition(ctx, tx, projectID)
		if err != nil {
			return nil, err
		}

		for i := range pageRecords {
			pageRecords[i].Position = next + i
		}

		if err := files.InsertAll(ctx, tx, fileRecords); err != nil {
			return nil, err
		}
		if err := pages.InsertAll(ctx, tx, pageRecords); err != nil {
			return nil, err
		}

		return pageRecords, nil
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	p.logger.Info("batch ingested",
		"project_id", projectID,
		"files", len(fileRecords),
		"pages", len(created),
	)
	return created, nil
}

// rasterize renders every page of the document at path, reassembling
// worker results into document order.
func (p *pipeline) rasterize(ctx context.Context, path string) ([]render.Raster, error) {
	probe, err := p.engine.Open(ctx, path, "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	count := probe.PageCount()
	probe.Close()

	if count < 1 {
		return nil, ErrEmptyDocument
	}

	workers := max(min(runtime.NumCPU(), count), 1)
	tasks := make(chan int, count)
	results := make(chan renderTask, count)

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			p.renderWorker(ctx, path, tasks, results)
		})
	}

	for pageNum := 1; pageNum <= count; pageNum++ {
		tasks <- pageNum
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	rasters := make([]render.Raster, count)
	for task := range results {
		if task.err != nil {
			return nil, task.err
		}
		rasters[task.pageNum-1] = task.raster
	}

	return rasters, nil
}

func (p *pipeline) renderWorker(ctx context.Context, path string, tasks <-chan int, results chan<- renderTask) {
	doc, err := p.engine.Open(ctx, path, "application/pdf")
	if err != nil {
		for pageNum := range tasks {
			results <- renderTask{
				pageNum: pageNum,
				err:     fmt.Errorf("%w: %v", ErrRenderFailed, err),
			}
		}
		return
	}
	defer doc.Close()

	for pageNum := range tasks {
		select {
		case <-ctx.Done():
			results <- renderTask{pageNum: pageNum, err: ctx.Err()}
			return
		default:
		}

		raster, err := doc.Render(pageNum)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
		results <- renderTask{pageNum: pageNum, raster: raster, err: err}
	}
}
