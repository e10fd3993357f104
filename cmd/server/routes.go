package main

import (
	"net/http"

	"github.com/Most2022/smartpdf/internal/analysis"
	"github.com/Most2022/smartpdf/internal/export"
	"github.com/Most2022/smartpdf/internal/files"
	"github.com/Most2022/smartpdf/internal/ingest"
	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/Most2022/smartpdf/internal/projects"
	"github.com/Most2022/smartpdf/pkg/middleware"
	"github.com/Most2022/smartpdf/pkg/routes"
)

func (app *Application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	api := routes.Group{
		Prefix:      "/api",
		Description: "PDF notebook API",
		Children: []routes.Group{
			projects.NewHandler(app.projects, app.logger, app.config.Pagination).Routes(),
			files.NewHandler(app.files, app.logger).Routes(),
			pages.NewHandler(app.pages, app.logger).Routes(),
			ingest.NewHandler(app.ingest, app.logger, app.config.Storage.MaxUploadSizeBytes()).Routes(),
			export.NewHandler(app.export, app.logger).Routes(),
			analysis.NewHandler(app.analysis, app.logger).Routes(),
		},
	}
	routes.Mount(mux, api)

	return app.enableCORS(app.logRequests(middleware.TrimSlash()(mux)))
}
