// Package sessiontoken implements the signed session artifact carried in the
// `session` cookie as an HS256 JWT. The artifact is stateless: everything the
// verifier needs is in the signed claims, and the application enforces its own
// maximum age on top of the signature expiry.
package sessiontoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/codemates/website/internal/domain/auth"
	"github.com/codemates/website/internal/ports"
)

const minSecretLen = 32

// issuer identifies artifacts minted by this application.
const issuer = "codemates-website"

// ErrInvalidArtifact is returned when an artifact is malformed, tampered
// with, signed with the wrong key or method, or past its signature expiry.
var ErrInvalidArtifact = errors.New("invalid session artifact")

// Codec signs and verifies session artifacts with a shared HMAC secret.
type Codec struct {
	secret []byte
	parser *jwt.Parser
}

var _ ports.SessionCodec = (*Codec)(nil)

// NewCodec constructs a Codec. The secret must be at least 32 bytes.
func NewCodec(secret string) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretLen)
	}
	return &Codec{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithIssuer(issuer),
		),
	}, nil
}

type sessionClaims struct {
	Email string          `json:"email"`
	Role  domainauth.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Mint produces the signed artifact for the given session.
func (c *Codec) Mint(sess domainauth.Session) (string, error) {
	if sess.UID == "" {
		return "", errors.New("session UID cannot be empty")
	}
	if !sess.ExpiresAt.After(sess.IssuedAt) {
		return "", errors.New("session expiry must be after issuance")
	}

	claims := sessionClaims{
		Email: sess.Email,
		Role:  sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sess.UID,
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session artifact: %w", err)
	}
	return signed, nil
}

// Verify decodes and validates an artifact, returning the embedded session.
// Callers are responsible for the application-level maximum-age check.
func (c *Codec) Verify(artifact string) (domainauth.Session, error) {
	if artifact == "" {
		return domainauth.Session{}, ErrInvalidArtifact
	}

	var claims sessionClaims
	token, err := c.parser.ParseWithClaims(artifact, &claims, func(_ *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return domainauth.Session{}, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}
	if claims.Subject == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return domainauth.Session{}, ErrInvalidArtifact
	}

	return domainauth.Session{
		ID:        claims.ID,
		UID:       claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Lifetime returns the signature lifetime of a session minted now with the
// given TTL. Split out for reuse by the issuer and tests.
func Lifetime(now time.Time, ttl time.Duration) (issued, expires time.Time) {
	return now.UTC(), now.UTC().Add(ttl)
}
