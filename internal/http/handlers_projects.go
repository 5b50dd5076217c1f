package httpx

import (
	"errors"
	"net/http"

	"github.com/codemates/website/internal/data"
	"github.com/codemates/website/internal/domain/model"
	"github.com/codemates/website/internal/service"
)

// ProjectHandlers provides the public project listing and the admin CRUD
// endpoints. Admin routes are gated by RequireAdminAPI in the route table.
type ProjectHandlers struct {
	Svc *service.ProjectService
}

// ListPublic handles GET /api/projects. Served read-through the content cache.
func (h *ProjectHandlers) ListPublic(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Svc.ListPublic(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to list projects"})
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

// List handles GET /api/admin/projects. Bypasses the cache so admins see
// edits immediately.
func (h *ProjectHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)
	projects, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to list projects"})
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

// Get handles GET /api/admin/projects/{id}.
func (h *ProjectHandlers) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, data.ErrProjectNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Project not found"})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to get project"})
		return
	}
	WriteJSON(w, http.StatusOK, project)
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProjectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	project, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, data.ErrProjectTitleExists) {
			WriteError(w, ErrorParams{Code: http.StatusConflict, Message: "Project title already exists"})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to create project"})
		return
	}
	WriteJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/admin/projects/{id}.
func (h *ProjectHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProjectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	project, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrProjectNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Project not found"})
		case errors.Is(err, data.ErrProjectTitleExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, Message: "Project title already exists"})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to update project"})
		}
		return
	}
	WriteJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to delete project"})
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Project not found"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
