// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/codemates/website/internal/domain/auth"
)

// CredentialStore is the external managed identity service. It verifies
// passwords, serves live user records, and stores the mutable role claim.
type CredentialStore interface {
	// VerifyPassword checks an email/password pair and returns the verified
	// identity, including the provider-issued identity token.
	VerifyPassword(ctx context.Context, email, password string) (domainauth.Identity, error)

	// GetUser fetches the current user record, including the live role claim.
	GetUser(ctx context.Context, uid string) (domainauth.UserRecord, error)

	// SetRoleClaim writes the role custom claim on the user record. Used only
	// to backfill the admin role at first login for allow-listed emails.
	SetRoleClaim(ctx context.Context, uid string, role domainauth.Role) error
}

// SessionCodec mints and verifies the signed session artifact carried in the
// `session` cookie.
type SessionCodec interface {
	// Mint produces the signed artifact for the given session.
	Mint(sess domainauth.Session) (string, error)

	// Verify decodes and validates an artifact. A malformed, tampered, or
	// signature-expired artifact is an error; the application-level maximum
	// age is enforced by the caller, not here.
	Verify(artifact string) (domainauth.Session, error)
}
