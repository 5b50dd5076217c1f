package httpx

import (
	"net/http"
	"strings"
	"time"
)

// SessionCookieName is the cookie carrying the signed session artifact.
const SessionCookieName = "session"

// requestIsSecure reports whether the request arrived over TLS, directly or
// via a terminating proxy.
func requestIsSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// SetSessionCookie writes the session cookie with the given artifact and
// lifetime: HttpOnly, SameSite=Lax, Path=/, Secure when the request is.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, artifact string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    artifact,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearSessionCookie expires the session cookie. Attributes mirror those used
// when setting it so browsers reliably delete it.
func ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}

// sessionArtifactFromRequest reads the raw artifact from the session cookie.
// Returns the empty string when the cookie is absent.
func sessionArtifactFromRequest(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
