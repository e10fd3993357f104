package pages

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Most2022/smartpdf/pkg/handlers"
	"github.com/Most2022/smartpdf/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for page collection operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a page handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "pages"),
	}
}

// Routes returns the page endpoint route groups: collection operations
// scoped under a project, and direct page access by id.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "Page collection management",
		Children: []routes.Group{
			{
				Prefix: "/projects/{projectID}/pages",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.List},
					{Method: "GET", Pattern: "/starred/count", Handler: h.StarredCount},
					{Method: "POST", Pattern: "/{position}/star", Handler: h.ToggleStar},
					{Method: "DELETE", Pattern: "/{position}", Handler: h.Remove},
					{Method: "PUT", Pattern: "/order", Handler: h.Reorder},
				},
			},
			{
				Prefix: "/pages",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/{id}/thumbnail", Handler: h.Thumbnail},
				},
			},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("projectID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	records, err := h.sys.List(r.Context(), projectID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, records)
}

func (h *Handler) StarredCount(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("projectID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	count, err := h.sys.StarredCount(r.Context(), projectID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]int{"starred_count": count})
}

func (h *Handler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	projectID, position, err := pathTarget(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	page, err := h.sys.ToggleStar(r.Context(), projectID, position)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	projectID, position, err := pathTarget(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Remove(r.Context(), projectID, position); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("projectID"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var body struct {
		PageIDs []uuid.UUID `json:"page_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Reorder(r.Context(), projectID, body.PageIDs); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	records, err := h.sys.List(r.Context(), projectID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, records)
}

func (h *Handler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	data, contentType, err := h.sys.Thumbnail(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func pathTarget(r *http.Request) (uuid.UUID, int, error) {
	projectID, err := uuid.Parse(r.PathValue("projectID"))
	if err != nil {
		return uuid.Nil, 0, err
	}

	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		return uuid.Nil, 0, err
	}

	return projectID, position, nil
}
