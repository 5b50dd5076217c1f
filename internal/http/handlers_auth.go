package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/codemates/website/internal/domain/auth"
	"github.com/codemates/website/internal/service"
)

// AuthServiceInterface defines the auth service operations handlers depend on.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
	Check(ctx context.Context, artifact string) (*service.CheckResult, error)
	Authorize(artifact string) (*service.Authorized, error)
	Logout(ctx context.Context, artifact string)
	SessionTTL() time.Duration
}

// AuthHandlers provides HTTP handlers for session issuance, verification, and
// teardown.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
// 400 on missing body or credentials, 403 when the email is not allow-listed,
// 401 when the provider rejects the credentials, 500 on parse or unexpected
// failure, 200 + session cookie on success.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := DecodeBody(r, &req); err != nil {
		if errors.Is(err, ErrEmptyBody) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: "No request body"})
			return
		}
		h.logger().ErrorContext(r.Context(), "login body parse failed", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Internal server error"})
		return
	}

	result, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, Message: "Email and password are required"})
		case errors.Is(err, service.ErrNotAllowListed):
			WriteError(w, ErrorParams{Code: http.StatusForbidden, Message: "Unauthorized access"})
		case errors.Is(err, service.ErrInvalidCredentials):
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Message: "Invalid credentials"})
		default:
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, Message: "Internal server error"})
		}
		return
	}

	SetSessionCookie(w, r, result.Artifact, h.Svc.SessionTTL())
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// checkResponse is the session-check payload shared by authenticated and
// unauthenticated outcomes.
type checkResponse struct {
	Authenticated bool       `json:"authenticated"`
	User          *checkUser `json:"user,omitempty"`
	Error         string     `json:"error,omitempty"`
}

type checkUser struct {
	Email string          `json:"email"`
	Role  domainauth.Role `json:"role"`
}

// Check handles GET /api/auth/check.
// A missing cookie is not an error (200, authenticated:false). An invalid
// artifact is 401; a session past the 15-minute age limit is 401 and clears
// the cookie; a verified identity without the admin role is 403.
func (h *AuthHandlers) Check(w http.ResponseWriter, r *http.Request) {
	artifact := sessionArtifactFromRequest(r)
	if artifact == "" {
		WriteJSON(w, http.StatusOK, checkResponse{Authenticated: false})
		return
	}

	result, err := h.Svc.Check(r.Context(), artifact)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionExpired):
			ClearSessionCookie(w, r)
			WriteJSON(w, http.StatusUnauthorized, checkResponse{Authenticated: false, Error: "Session expired"})
		case errors.Is(err, service.ErrNotAdmin):
			WriteJSON(w, http.StatusForbidden, checkResponse{Authenticated: false, Error: "Access denied: admin role required"})
		case errors.Is(err, service.ErrInvalidSession):
			WriteJSON(w, http.StatusUnauthorized, checkResponse{Authenticated: false, Error: "Invalid session"})
		default:
			// Provider trouble is surfaced conservatively as a denial.
			h.logger().ErrorContext(r.Context(), "session check failed", "error", err)
			WriteJSON(w, http.StatusUnauthorized, checkResponse{Authenticated: false, Error: "Authentication check failed"})
		}
		return
	}

	WriteJSON(w, http.StatusOK, checkResponse{
		Authenticated: true,
		User:          &checkUser{Email: result.Email, Role: domainauth.RoleAdmin},
	})
}

// Logout handles POST /api/auth/logout. Idempotent: the cookie is cleared
// whether or not a session was present.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Svc.Logout(r.Context(), sessionArtifactFromRequest(r))
	ClearSessionCookie(w, r)
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
