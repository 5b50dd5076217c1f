package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemates/website/internal/adapters/identity"
	domainauth "github.com/codemates/website/internal/domain/auth"
	mockauth "github.com/codemates/website/internal/mocks/auth"
)

func newTestAuthService(
	creds *mockauth.MockCredentialStore,
	codec *mockauth.MockSessionCodec,
	now func() time.Time,
) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Credentials:   creds,
		Codec:         codec,
		AllowedEmails: []string{"mock.admin@example.com", " Second.Admin@Example.com "},
		SessionTTL:    15 * time.Minute,
		Now:           now,
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credentials never reach the credential store", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		svc := newTestAuthService(creds, mockauth.NewMockSessionCodec(), nil)

		cases := []struct {
			name     string
			email    string
			password string
		}{
			{"empty email", "", "secret"},
			{"blank email", "   ", "secret"},
			{"empty password", "mock.admin@example.com", ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Login(ctx, tc.email, tc.password)
				assert.ErrorIs(t, err, ErrMissingCredentials)
			})
		}
		assert.Equal(t, 0, creds.VerifyCalls)
	})

	t.Run("unlisted email is rejected before password verification", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		svc := newTestAuthService(creds, mockauth.NewMockSessionCodec(), nil)

		_, err := svc.Login(ctx, "intruder@example.com", "secret")
		assert.ErrorIs(t, err, ErrNotAllowListed)
		assert.Equal(t, 0, creds.VerifyCalls)
	})

	t.Run("allow list comparison is case-insensitive", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		svc := newTestAuthService(creds, mockauth.NewMockSessionCodec(), nil)

		result, err := svc.Login(ctx, "MOCK.ADMIN@example.COM", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Artifact)
		assert.Equal(t, 1, creds.VerifyCalls)
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		creds.VerifyPasswordFunc = func(_ context.Context, _, _ string) (domainauth.Identity, error) {
			return domainauth.Identity{}, identity.ErrInvalidCredentials
		}
		svc := newTestAuthService(creds, mockauth.NewMockSessionCodec(), nil)

		_, err := svc.Login(ctx, "mock.admin@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("successful login mints a verifiable session", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		codec := mockauth.NewMockSessionCodec()
		now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		svc := newTestAuthService(creds, codec, func() time.Time { return now })

		result, err := svc.Login(ctx, "mock.admin@example.com", "secret")
		require.NoError(t, err)

		sess, err := codec.Verify(result.Artifact)
		require.NoError(t, err)
		assert.Equal(t, "mock-uid-1", sess.UID)
		assert.Equal(t, domainauth.RoleAdmin, sess.Role)
		assert.Equal(t, now, sess.IssuedAt)
		assert.Equal(t, now.Add(15*time.Minute), sess.ExpiresAt)
	})

	t.Run("missing admin claim is backfilled", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		creds.DefaultIdentity.Role = domainauth.RoleNone
		svc := newTestAuthService(creds, mockauth.NewMockSessionCodec(), nil)

		result, err := svc.Login(ctx, "mock.admin@example.com", "secret")
		require.NoError(t, err)

		assert.Equal(t, 1, creds.SetRoleClaimCalls)
		assert.Equal(t, domainauth.RoleAdmin, creds.ClaimsSet["mock-uid-1"])
		assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
	})

	t.Run("backfill failure does not block login", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		creds.DefaultIdentity.Role = domainauth.RoleNone
		creds.SetRoleClaimFunc = func(_ context.Context, _ string, _ domainauth.Role) error {
			return errors.New("claims endpoint unavailable")
		}
		svc := newTestAuthService(creds, mockauth.NewMockSessionCodec(), nil)

		result, err := svc.Login(ctx, "mock.admin@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
	})
}

func TestAuthService_Check(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	seedSession := func(codec *mockauth.MockSessionCodec, issuedAt time.Time, role domainauth.Role) string {
		return codec.Seed(domainauth.Session{
			ID:        "sess-1",
			UID:       "mock-uid-1",
			Email:     "mock.admin@example.com",
			Role:      role,
			IssuedAt:  issuedAt,
			ExpiresAt: issuedAt.Add(15 * time.Minute),
		})
	}

	t.Run("valid session returns the fresh user record email", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		codec := mockauth.NewMockSessionCodec()
		svc := newTestAuthService(creds, codec, func() time.Time { return base.Add(5 * time.Minute) })
		artifact := seedSession(codec, base, domainauth.RoleAdmin)

		result, err := svc.Check(ctx, artifact)
		require.NoError(t, err)
		assert.True(t, result.IsAdmin)
		assert.Equal(t, "mock.admin@example.com", result.Email)
		assert.Equal(t, 1, creds.GetUserCalls)
	})

	t.Run("session older than the TTL is expired", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		codec := mockauth.NewMockSessionCodec()
		svc := newTestAuthService(creds, codec, func() time.Time { return base.Add(20 * time.Minute) })
		artifact := seedSession(codec, base, domainauth.RoleAdmin)

		_, err := svc.Check(ctx, artifact)
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Equal(t, 0, creds.GetUserCalls)
	})

	t.Run("empty artifact is an invalid session", func(t *testing.T) {
		svc := newTestAuthService(mockauth.NewMockCredentialStore(), mockauth.NewMockSessionCodec(), nil)
		_, err := svc.Check(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("unknown artifact is an invalid session", func(t *testing.T) {
		svc := newTestAuthService(mockauth.NewMockCredentialStore(), mockauth.NewMockSessionCodec(), nil)
		_, err := svc.Check(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("session without admin standing is forbidden", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		creds.Users["mock-uid-1"] = domainauth.UserRecord{
			UID:   "mock-uid-1",
			Email: "mock.admin@example.com",
			Role:  domainauth.RoleNone,
		}
		codec := mockauth.NewMockSessionCodec()
		svc := newTestAuthService(creds, codec, func() time.Time { return base.Add(time.Minute) })
		artifact := seedSession(codec, base, domainauth.RoleNone)

		_, err := svc.Check(ctx, artifact)
		assert.ErrorIs(t, err, ErrNotAdmin)
	})

	t.Run("claim granted after login takes effect without re-authentication", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		codec := mockauth.NewMockSessionCodec()
		svc := newTestAuthService(creds, codec, func() time.Time { return base.Add(time.Minute) })
		// Session minted before the claim existed; the fresh record carries it.
		artifact := seedSession(codec, base, domainauth.RoleNone)

		result, err := svc.Check(ctx, artifact)
		require.NoError(t, err)
		assert.True(t, result.IsAdmin)
	})
}

func TestAuthService_Authorize(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("trusts the signed role without a fresh lookup", func(t *testing.T) {
		creds := mockauth.NewMockCredentialStore()
		codec := mockauth.NewMockSessionCodec()
		svc := newTestAuthService(creds, codec, func() time.Time { return base.Add(time.Minute) })
		artifact := codec.Seed(domainauth.Session{
			ID:        "sess-1",
			UID:       "mock-uid-1",
			Email:     "mock.admin@example.com",
			Role:      domainauth.RoleAdmin,
			IssuedAt:  base,
			ExpiresAt: base.Add(15 * time.Minute),
		})

		authorized, err := svc.Authorize(artifact)
		require.NoError(t, err)
		assert.Equal(t, "mock-uid-1", authorized.UID)
		assert.Equal(t, 0, creds.GetUserCalls)
	})

	t.Run("rejects a non-admin role", func(t *testing.T) {
		codec := mockauth.NewMockSessionCodec()
		svc := newTestAuthService(mockauth.NewMockCredentialStore(), codec, func() time.Time { return base.Add(time.Minute) })
		artifact := codec.Seed(domainauth.Session{
			ID:        "sess-2",
			UID:       "mock-uid-1",
			Email:     "mock.admin@example.com",
			IssuedAt:  base,
			ExpiresAt: base.Add(15 * time.Minute),
		})

		_, err := svc.Authorize(artifact)
		assert.ErrorIs(t, err, ErrNotAdmin)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc := newTestAuthService(mockauth.NewMockCredentialStore(), mockauth.NewMockSessionCodec(), nil)

	// Logout is idempotent and never fails, even for unknown artifacts.
	svc.Logout(context.Background(), "unknown")
	svc.Logout(context.Background(), "")
}
