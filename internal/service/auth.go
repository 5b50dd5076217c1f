package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codemates/website/internal/adapters/identity"
	domainauth "github.com/codemates/website/internal/domain/auth"
	"github.com/codemates/website/internal/ports"
)

// Sentinel errors for the authentication flows. Handlers map these onto HTTP
// status codes.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrNotAllowListed     = errors.New("email is not on the admin allow list")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")
	ErrNotAdmin           = errors.New("admin privileges required")
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Credentials ports.CredentialStore
	Codec       ports.SessionCodec
	// AllowedEmails is the static admin allow list. Comparison is
	// case-insensitive.
	AllowedEmails []string
	// SessionTTL bounds both the artifact signature and the application-level
	// maximum session age. Defaults to 15 minutes.
	SessionTTL time.Duration
	Logger     *slog.Logger
	// Now is overridable for tests.
	Now func() time.Time
}

// AuthService orchestrates admin authentication: allow-list screening,
// password verification against the Credential Store, role claim backfill,
// and minting/checking the signed session artifact.
type AuthService struct {
	creds      ports.CredentialStore
	codec      ports.SessionCodec
	allowlist  map[string]struct{}
	sessionTTL time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

const defaultSessionTTL = 15 * time.Minute

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	allowlist := make(map[string]struct{}, len(opts.AllowedEmails))
	for _, e := range opts.AllowedEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowlist[e] = struct{}{}
		}
	}

	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &AuthService{
		creds:      opts.Credentials,
		codec:      opts.Codec,
		allowlist:  allowlist,
		sessionTTL: ttl,
		logger:     logger,
		now:        now,
	}
}

// SessionTTL reports the configured session lifetime. Handlers use it for the
// cookie Max-Age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Artifact string
	Session  domainauth.Session
}

// Login authenticates an admin. The allow list is consulted before the
// Credential Store sees the password, so unlisted emails never trigger a
// verification attempt.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, ok := s.allowlist[normalized]; !ok {
		s.logger.Warn("login rejected: not on allow list", "email", normalized)
		return nil, ErrNotAllowListed
	}

	ident, err := s.creds.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	role := ident.Role
	if role != domainauth.RoleAdmin {
		// Allow-listed users are admins by definition; persist the claim so
		// future identity tokens carry it.
		if claimErr := s.creds.SetRoleClaim(ctx, ident.UID, domainauth.RoleAdmin); claimErr != nil {
			s.logger.Warn("role claim backfill failed", "uid", ident.UID, "error", claimErr)
		}
		role = domainauth.RoleAdmin
	}

	now := s.now().UTC()
	sess := domainauth.Session{
		ID:        uuid.NewString(),
		UID:       ident.UID,
		Email:     ident.Email,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	artifact, err := s.codec.Mint(sess)
	if err != nil {
		return nil, fmt.Errorf("mint session: %w", err)
	}

	s.logger.Info("admin login", "uid", sess.UID, "email", sess.Email)
	return &LoginResult{Artifact: artifact, Session: sess}, nil
}

// CheckResult is the outcome of a session check.
type CheckResult struct {
	UID     string
	Email   string
	IsAdmin bool
}

// Check validates a session artifact, enforces the maximum session age, and
// confirms admin standing against a fresh user record. The admin decision
// honors either the role embedded at login time or the live claim, so a claim
// granted after login takes effect without re-authentication.
func (s *AuthService) Check(ctx context.Context, artifact string) (*CheckResult, error) {
	sess, err := s.verifySession(artifact)
	if err != nil {
		return nil, err
	}

	record, err := s.creds.GetUser(ctx, sess.UID)
	if err != nil {
		return nil, fmt.Errorf("fetch user record: %w", err)
	}

	isAdmin := sess.Role == domainauth.RoleAdmin || record.IsAdmin()
	if !isAdmin {
		return nil, ErrNotAdmin
	}

	return &CheckResult{
		UID:     sess.UID,
		Email:   record.Email,
		IsAdmin: true,
	}, nil
}

// Authorized identifies the admin a request is acting as.
type Authorized struct {
	UID   string
	Email string
}

// Authorize is the shared guard for admin API requests. It performs the same
// validation as Check but skips the fresh user-record fetch, trusting the role
// signed into the artifact for the session's short lifetime.
func (s *AuthService) Authorize(artifact string) (*Authorized, error) {
	sess, err := s.verifySession(artifact)
	if err != nil {
		return nil, err
	}
	if sess.Role != domainauth.RoleAdmin {
		return nil, ErrNotAdmin
	}
	return &Authorized{UID: sess.UID, Email: sess.Email}, nil
}

// Logout is idempotent. The artifact is stateless, so there is nothing to
// revoke server-side; the handler clears the cookie regardless.
func (s *AuthService) Logout(_ context.Context, artifact string) {
	if artifact == "" {
		return
	}
	if sess, err := s.codec.Verify(artifact); err == nil {
		s.logger.Info("admin logout", "uid", sess.UID)
	}
}

// verifySession decodes the artifact and enforces the application maximum age
// on top of the signature expiry.
func (s *AuthService) verifySession(artifact string) (domainauth.Session, error) {
	if artifact == "" {
		return domainauth.Session{}, ErrInvalidSession
	}

	sess, err := s.codec.Verify(artifact)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	now := s.now()
	if sess.OlderThan(now, s.sessionTTL) || now.After(sess.ExpiresAt) {
		return domainauth.Session{}, ErrSessionExpired
	}

	return sess, nil
}
