package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemates/website/internal/service"
)

func guardedHandler(served *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*served = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminGuard(t *testing.T) {
	newRequest := func(path, artifact string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		if artifact != "" {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: artifact})
		}
		return r
	}

	t.Run("no cookie redirects to login without service calls", func(t *testing.T) {
		svc := &fakeAuthService{}
		var served bool
		h := AdminGuard(svc)(guardedHandler(&served))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/admin/dashboard", ""))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
		assert.False(t, served)
		assert.Equal(t, 0, svc.checkCalls)
	})

	t.Run("no cookie on the login page serves the form", func(t *testing.T) {
		svc := &fakeAuthService{}
		var served bool
		h := AdminGuard(svc)(guardedHandler(&served))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/admin/login", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, served)
		assert.Equal(t, 0, svc.checkCalls)
	})

	t.Run("forbidden verdict clears the cookie and redirects", func(t *testing.T) {
		svc := &fakeAuthService{
			checkFunc: func(_ context.Context, _ string) (*service.CheckResult, error) {
				return nil, service.ErrNotAdmin
			},
		}
		var served bool
		h := AdminGuard(svc)(guardedHandler(&served))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/admin/dashboard", "not-admin"))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
		assert.False(t, served)

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("transient failure redirects without clearing the cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			checkFunc: func(_ context.Context, _ string) (*service.CheckResult, error) {
				return nil, context.DeadlineExceeded
			},
		}
		var served bool
		h := AdminGuard(svc)(guardedHandler(&served))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/admin/inquiries", "some-session"))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("broken session on the login page still serves the form", func(t *testing.T) {
		svc := &fakeAuthService{
			checkFunc: func(_ context.Context, _ string) (*service.CheckResult, error) {
				return nil, service.ErrSessionExpired
			},
		}
		var served bool
		h := AdminGuard(svc)(guardedHandler(&served))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/admin/login", "stale"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, served)
	})

	t.Run("valid session passes through", func(t *testing.T) {
		svc := &fakeAuthService{
			checkFunc: func(_ context.Context, _ string) (*service.CheckResult, error) {
				return &service.CheckResult{UID: "uid-1", Email: "admin@example.com", IsAdmin: true}, nil
			},
		}
		var served bool
		h := AdminGuard(svc)(guardedHandler(&served))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/admin/dashboard", "valid"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, served)
	})

	t.Run("valid session on the login page forwards to the dashboard", func(t *testing.T) {
		svc := &fakeAuthService{
			checkFunc: func(_ context.Context, _ string) (*service.CheckResult, error) {
				return &service.CheckResult{UID: "uid-1", Email: "admin@example.com", IsAdmin: true}, nil
			},
		}
		var served bool
		h := AdminGuard(svc)(guardedHandler(&served))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("/admin/login", "valid"))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
		assert.False(t, served)
	})
}

func TestRequireAdminAPI(t *testing.T) {
	t.Run("every failure is a uniform 401", func(t *testing.T) {
		for _, artifact := range []string{"", "garbage", "expired", "not-admin"} {
			svc := &fakeAuthService{
				authorizeFunc: func(_ string) (*service.Authorized, error) {
					return nil, service.ErrInvalidSession
				},
			}
			var served bool
			h := RequireAdminAPI(svc)(guardedHandler(&served))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/inquiries", nil)
			if artifact != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: artifact})
			}
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Unauthorized access", decodeJSONBody(t, rec)["error"])
			assert.False(t, served)
		}
	})

	t.Run("success places the admin in the request context", func(t *testing.T) {
		svc := &fakeAuthService{
			authorizeFunc: func(artifact string) (*service.Authorized, error) {
				assert.Equal(t, "valid", artifact)
				return &service.Authorized{UID: "uid-1", Email: "admin@example.com"}, nil
			},
		}

		var got *service.Authorized
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = AuthorizedFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
		h := RequireAdminAPI(svc)(inner)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid"})
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, "admin@example.com", got.Email)
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
