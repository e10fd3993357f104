package main

import (
	"database/sql"
	"log/slog"

	"github.com/Most2022/smartpdf/internal/analysis"
	"github.com/Most2022/smartpdf/internal/config"
	"github.com/Most2022/smartpdf/internal/export"
	"github.com/Most2022/smartpdf/internal/files"
	"github.com/Most2022/smartpdf/internal/ingest"
	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/Most2022/smartpdf/internal/projects"
	"github.com/Most2022/smartpdf/internal/render"
	"github.com/Most2022/smartpdf/internal/storage"
	"github.com/Most2022/smartpdf/pkg/locks"
)

// Application wires the domain systems and their handlers.
type Application struct {
	config *config.Config
	logger *slog.Logger

	files    files.System
	pages    pages.System
	projects projects.System
	ingest   ingest.System
	export   export.System
	analysis analysis.System
}

func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*Application, error) {
	blobs, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	if err := blobs.Start(); err != nil {
		return nil, err
	}

	engine, err := render.NewEngine(cfg.Render.DPI, cfg.Render.Format)
	if err != nil {
		return nil, err
	}

	projectLocks := locks.NewKeyedMutex()

	fileSys := files.New(db, blobs, logger)
	pageSys := pages.New(db, blobs, projectLocks, logger)
	projectSys := projects.New(db, pageSys, fileSys, logger, cfg.Pagination)
	ingestSys := ingest.New(db, blobs, engine, projectSys, projectLocks, logger, cfg.Render.Format)
	exportSys := export.New(projectSys, fileSys, export.NewAssembler(), logger)

	var client analysis.Client
	if cfg.AI.Enabled() {
		client = analysis.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	} else {
		logger.Warn("analysis disabled: no API key configured")
	}
	analysisSys := analysis.New(client, projectSys, pageSys, logger)

	return &Application{
		config:   cfg,
		logger:   logger,
		files:    fileSys,
		pages:    pageSys,
		projects: projectSys,
		ingest:   ingestSys,
		export:   exportSys,
		analysis: analysisSys,
	}, nil
}
