package httpx

import (
	"log/slog"
	"net/http"

	"github.com/codemates/website/internal/domain/model"
	"github.com/codemates/website/internal/service"
)

// ContactHandlers serves the public contact/quote intake endpoint.
type ContactHandlers struct {
	Svc    *service.InquiryService
	Logger *slog.Logger
}

// Submit handles POST /api/contact. Contact submissions require a message;
// quote requests require company, budget, timeline, and description instead.
func (h *ContactHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInquiryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}

	inq, err := h.Svc.Submit(r.Context(), &req)
	if err != nil {
		if h.Logger != nil {
			h.Logger.ErrorContext(r.Context(), "contact submission failed", "error", err)
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Failed to submit inquiry"})
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      inq.ID,
	})
}
