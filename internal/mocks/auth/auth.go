// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"

	domainauth "github.com/codemates/website/internal/domain/auth"
	"github.com/codemates/website/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore = (*MockCredentialStore)(nil)
	_ ports.SessionCodec    = (*MockSessionCodec)(nil)
)

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}

// MockCredentialStore simulates the external identity service for tests.
// Call counters make it possible to assert ordering properties, e.g. that an
// allow-list rejection never reaches password verification.
type MockCredentialStore struct {
	VerifyPasswordFunc func(ctx context.Context, email, password string) (domainauth.Identity, error)
	GetUserFunc        func(ctx context.Context, uid string) (domainauth.UserRecord, error)
	SetRoleClaimFunc   func(ctx context.Context, uid string, role domainauth.Role) error

	// Users keyed by uid; used when GetUserFunc is nil.
	Users map[string]domainauth.UserRecord
	// DefaultIdentity returned when VerifyPasswordFunc is nil.
	DefaultIdentity domainauth.Identity

	VerifyCalls       int
	GetUserCalls      int
	SetRoleClaimCalls int
	// ClaimsSet records roles written per uid.
	ClaimsSet map[string]domainauth.Role
}

// NewMockCredentialStore creates a MockCredentialStore with a single admin user.
func NewMockCredentialStore() *MockCredentialStore {
	ident := domainauth.Identity{
		UID:   "mock-uid-1",
		Email: "mock.admin@example.com",
		Role:  domainauth.RoleAdmin,
	}
	return &MockCredentialStore{
		DefaultIdentity: ident,
		Users: map[string]domainauth.UserRecord{
			ident.UID: {UID: ident.UID, Email: ident.Email, Role: ident.Role},
		},
		ClaimsSet: make(map[string]domainauth.Role),
	}
}

func (m *MockCredentialStore) VerifyPassword(ctx context.Context, email, password string) (domainauth.Identity, error) {
	m.VerifyCalls++
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(ctx, email, password)
	}
	if email == "" || password == "" {
		return domainauth.Identity{}, errors.New("missing credentials")
	}
	ident := m.DefaultIdentity
	ident.Email = email
	return ident, nil
}

func (m *MockCredentialStore) GetUser(ctx context.Context, uid string) (domainauth.UserRecord, error) {
	m.GetUserCalls++
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, uid)
	}
	rec, ok := m.Users[uid]
	if !ok {
		return domainauth.UserRecord{}, ErrNotFound
	}
	return rec, nil
}

func (m *MockCredentialStore) SetRoleClaim(ctx context.Context, uid string, role domainauth.Role) error {
	m.SetRoleClaimCalls++
	if m.ClaimsSet == nil {
		m.ClaimsSet = make(map[string]domainauth.Role)
	}
	m.ClaimsSet[uid] = role
	if m.SetRoleClaimFunc != nil {
		return m.SetRoleClaimFunc(ctx, uid, role)
	}
	if rec, ok := m.Users[uid]; ok {
		rec.Role = role
		m.Users[uid] = rec
	}
	return nil
}

// MockSessionCodec is a transparent codec for tests: the artifact is the
// session ID and verification looks it up in an in-memory map.
type MockSessionCodec struct {
	MintFunc   func(sess domainauth.Session) (string, error)
	VerifyFunc func(artifact string) (domainauth.Session, error)

	sessions map[string]domainauth.Session
}

// NewMockSessionCodec creates an empty MockSessionCodec.
func NewMockSessionCodec() *MockSessionCodec {
	return &MockSessionCodec{sessions: make(map[string]domainauth.Session)}
}

func (m *MockSessionCodec) Mint(sess domainauth.Session) (string, error) {
	if m.MintFunc != nil {
		return m.MintFunc(sess)
	}
	if sess.ID == "" {
		return "", errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return sess.ID, nil
}

func (m *MockSessionCodec) Verify(artifact string) (domainauth.Session, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(artifact)
	}
	sess, ok := m.sessions[artifact]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

// Seed registers a session so Verify can return it.
func (m *MockSessionCodec) Seed(sess domainauth.Session) string {
	m.sessions[sess.ID] = sess
	return sess.ID
}
