// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	// RoleAdmin is the only role this application acts on; every protected
	// surface requires it.
	RoleAdmin Role = "admin"
	// RoleNone marks an identity whose role claim has never been set.
	RoleNone Role = ""
)

// Identity represents the authenticated principal returned by the Credential
// Store after password verification. Adapters map provider-specific payloads
// into this shape.
type Identity struct {
	UID     string // stable user identifier from the provider
	Email   string
	Role    Role   // role claim embedded in the identity token, may be empty
	IDToken string // raw identity token issued by the provider
}

// UserRecord is the live user record held by the Credential Store. The
// verifier re-reads it on every check so revoked roles take effect before the
// session artifact itself expires.
type UserRecord struct {
	UID   string
	Email string
	Role  Role
}

// IsAdmin reports whether the record currently carries the admin role.
func (u UserRecord) IsAdmin() bool { return u.Role == RoleAdmin }

// Session is the signed, time-limited artifact carried in the `session`
// cookie. It is stored client-side only; the server keeps no session state.
type Session struct {
	ID       string    `json:"id"` // jti, unique per issuance
	UID      string    `json:"uid"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"` // claim embedded at issuance time
	IssuedAt time.Time `json:"issued_at"`
	// ExpiresAt is the signature expiry. The application additionally enforces
	// a maximum age from IssuedAt, independent of this value.
	ExpiresAt time.Time `json:"expires_at"`
}

// Age returns how long ago the session was issued.
func (s Session) Age(now time.Time) time.Duration { return now.Sub(s.IssuedAt) }

// OlderThan reports whether the session was issued more than maxAge ago.
func (s Session) OlderThan(now time.Time, maxAge time.Duration) bool {
	return s.Age(now) > maxAge
}
