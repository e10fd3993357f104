package analysis

import (
	"log/slog"
	"net/http"

	"github.com/Most2022/smartpdf/pkg/handlers"
	"github.com/Most2022/smartpdf/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for AI analysis.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an analysis handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analysis"),
	}
}

// Routes returns the analysis endpoint route groups.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "AI study assistance",
		Children: []routes.Group{
			{
				Prefix: "/projects/{projectID}/analyze",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: h.AnalyzeNotebook},
				},
			},
			{
				Prefix: "/pages/{id}/explain",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: h.ExplainPage},
				},
			},
		},
	}
}

func (h *Handler) AnalyzeNotebook(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("projectID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.AnalyzeNotebook(r.Context(), projectID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"analysis": result})
}

func (h *Handler) ExplainPage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.ExplainPage(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"explanation": result})
}
