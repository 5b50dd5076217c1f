package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codemates/website/internal/data"
	"github.com/codemates/website/internal/domain/model"
	"github.com/codemates/website/internal/service"
)

// InquiryHandlers provides admin endpoints for inquiry triage. Authorization
// is enforced by RequireAdminAPI in the route table.
type InquiryHandlers struct {
	Svc *service.InquiryService
}

// List handles GET /api/admin/inquiries.
func (h *InquiryHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)
	inquiries, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to list inquiries"})
		return
	}
	WriteJSON(w, http.StatusOK, inquiries)
}

// Get handles GET /api/admin/inquiries/{id}.
func (h *InquiryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	inq, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, data.ErrInquiryNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Inquiry not found"})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to get inquiry"})
		return
	}
	WriteJSON(w, http.StatusOK, inq)
}

// UpdateStatus handles PUT /api/admin/inquiries/{id}.
func (h *InquiryHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status model.InquiryStatus `json:"status"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}

	req := model.UpdateInquiryStatusRequest{ID: r.PathValue("id"), Status: body.Status}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	inq, err := h.Svc.UpdateStatus(r.Context(), req)
	if err != nil {
		if errors.Is(err, data.ErrInquiryNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Inquiry not found"})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to update inquiry"})
		return
	}
	WriteJSON(w, http.StatusOK, inq)
}

// Delete handles DELETE /api/admin/inquiries/{id}.
func (h *InquiryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to delete inquiry"})
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, Message: "Inquiry not found"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// paginationParams reads limit/offset query parameters with defaults.
func paginationParams(r *http.Request) (limit, offset int) {
	limit = 50
	offset = 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
