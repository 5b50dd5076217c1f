package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/codemates/website/internal/service"
)

const (
	adminLoginPath     = "/admin/login"
	adminDashboardPath = "/admin/dashboard"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AdminGuard protects the /admin page tree. Requests without a session cookie
// are redirected to the login page without touching any external service.
// A forbidden verdict clears the cookie before redirecting; any other failure
// redirects without clearing, since it may be transient. A valid session
// landing on the login page is forwarded to the dashboard so users never
// re-login needlessly. All redirect targets sit outside the guarded handlers,
// so the guard cannot loop.
func AdminGuard(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isLoginPage := r.URL.Path == adminLoginPath ||
				strings.TrimSuffix(r.URL.Path, "/") == adminLoginPath

			artifact := sessionArtifactFromRequest(r)
			if artifact == "" {
				if isLoginPage {
					next.ServeHTTP(w, r)
					return
				}
				http.Redirect(w, r, adminLoginPath, http.StatusSeeOther)
				return
			}

			_, err := authSvc.Check(r.Context(), artifact)
			if err != nil {
				if isLoginPage {
					// Broken session on the login page: just show the form.
					next.ServeHTTP(w, r)
					return
				}
				if errors.Is(err, service.ErrNotAdmin) {
					ClearSessionCookie(w, r)
				}
				http.Redirect(w, r, adminLoginPath, http.StatusSeeOther)
				return
			}

			if isLoginPage {
				http.Redirect(w, r, adminDashboardPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminAPI gates admin data endpoints. Every failure, whatever its
// cause, maps to 401 "Unauthorized access" so the API boundary does not leak
// why authorization failed. On success the authorized admin is placed in the
// request context.
func RequireAdminAPI(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorized, err := authSvc.Authorize(sessionArtifactFromRequest(r))
			if err != nil {
				WriteError(w, ErrorParams{Code: http.StatusUnauthorized, Message: "Unauthorized access"})
				return
			}
			ctx := SetAuthorizedInContext(r.Context(), authorized)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Chain applies middlewares to a handler in the order given, so the first
// middleware is outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
