package httpx

import (
	"context"
	"io"
	"net/http"
)

const healthResponse = `{"status":"ok"}`

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// Pinger exposes a connectivity probe against the Credential Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AdminHandlers serves admin utility endpoints outside the CRUD surface.
type AdminHandlers struct {
	CredentialStore Pinger
}

// TestConnection handles GET /api/admin/test-connection: probes the
// Credential Store admin surface and reports reachability.
func (h *AdminHandlers) TestConnection(w http.ResponseWriter, r *http.Request) {
	if h.CredentialStore == nil {
		WriteJSON(w, http.StatusOK, map[string]any{"connected": false, "error": "credential store not configured"})
		return
	}
	if err := h.CredentialStore.Ping(r.Context()); err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"connected": false, "error": err.Error()})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"connected": true})
}
