package httpx

import (
	"errors"
	"net/http"

	"github.com/codemates/website/internal/data"
	"github.com/codemates/website/internal/domain/model"
	"github.com/codemates/website/internal/service"
)

// TeamHandlers provides the public team listing and the admin CRUD endpoints.
type TeamHandlers struct {
	Svc *service.TeamMemberService
}

// ListPublic handles GET /api/team.
func (h *TeamHandlers) ListPublic(w http.ResponseWriter, r *http.Request) {
	members, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to list team members"})
		return
	}
	WriteJSON(w, http.StatusOK, members)
}

// List handles GET /api/admin/team.
func (h *TeamHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ListPublic(w, r)
}

// Get handles GET /api/admin/team/{id}.
func (h *TeamHandlers) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, data.ErrTeamMemberNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Team member not found"})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to get team member"})
		return
	}
	WriteJSON(w, http.StatusOK, member)
}

// Create handles POST /api/admin/team.
func (h *TeamHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTeamMemberRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	member, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to create team member"})
		return
	}
	WriteJSON(w, http.StatusCreated, member)
}

// Update handles PUT /api/admin/team/{id}.
func (h *TeamHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTeamMemberRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	member, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		if errors.Is(err, data.ErrTeamMemberNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Team member not found"})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to update team member"})
		return
	}
	WriteJSON(w, http.StatusOK, member)
}

// Delete handles DELETE /api/admin/team/{id}.
func (h *TeamHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to delete team member"})
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Team member not found"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
