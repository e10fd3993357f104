package export

import (
	"log/slog"
	"net/http"

	"github.com/Most2022/smartpdf/pkg/handlers"
	"github.com/Most2022/smartpdf/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides the HTTP endpoint for PDF export downloads.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an export handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "export"),
	}
}

// Routes returns the export endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/projects/{projectID}/export",
		Description: "Merged PDF export",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Export},
		},
	}
}

// Export merges the pages in scope and responds with the PDF download.
// The scope query parameter accepts "all" (default) or "starred".
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("projectID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	scope, err := ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	artifact, err := h.sys.Export(r.Context(), projectID, scope)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondAttachment(w, "application/pdf", artifact.Filename, artifact.Data)
}
