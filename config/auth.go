package config

import "time"

// IdentityConfig contains the Credential Store (external identity provider)
// client configuration.
type IdentityConfig struct {
	// BaseURL of the identity service REST API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9099"`
	// APIKey authorizes the public password-verification endpoint.
	APIKey string `env:"API_KEY" envDefault:"dev-key"`
	// TokenURL enables the service-account client credentials grant for admin
	// endpoints. Empty means unauthenticated admin calls (emulator only).
	TokenURL     string   `env:"TOKEN_URL"`
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES" envSeparator:" "`
	// RoleClaimPath is the JMESPath expression extracting the role claim from
	// the provider's user record.
	RoleClaimPath string `env:"ROLE_CLAIM_PATH" envDefault:"customAttributes.role"`
	// Issuer and Audience enable verification of provider identity tokens.
	Issuer   string `env:"ISSUER"`
	Audience string `env:"AUDIENCE"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// AdminEmails is the comma-separated admin allow list. Only these emails
	// may log in to the admin area.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// SessionSecret signs the session artifact. Must be at least 32 bytes.
	// Required outside development mode.
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionTTL bounds both the cookie lifetime and the application-level
	// maximum session age.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"15m"`

	// Identity is the Credential Store client configuration.
	Identity IdentityConfig `envPrefix:"IDENTITY_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 15 * time.Minute
	}
}
