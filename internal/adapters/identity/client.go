// Package identity provides the HTTP client for the external Credential
// Store (a managed identity service with a Firebase-style REST surface). It
// verifies passwords, reads live user records, and writes the role custom
// claim. The service itself is an opaque external collaborator; this adapter
// only shapes requests and maps responses into domain types.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	domainauth "github.com/codemates/website/internal/domain/auth"
	"github.com/codemates/website/internal/ports"
)

const defaultRoleClaimPath = "customAttributes.role"

var (
	// ErrInvalidCredentials is returned when the provider rejects an
	// email/password pair (wrong password, unknown or disabled user).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a uid has no user record.
	ErrUserNotFound = errors.New("user not found")
)

// Client implements ports.CredentialStore against the provider's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client // public endpoints (password verification)
	adminHTTP  *http.Client // admin endpoints, authenticated via service account
	rolePath   jmespath.JMESPath
	verifier   *gooidc.IDTokenVerifier // optional identity-token verification
}

var _ ports.CredentialStore = (*Client)(nil)

// Config holds configuration for the Credential Store client.
type Config struct {
	// BaseURL of the identity service, e.g. "https://identitytoolkit.example.com".
	BaseURL string
	// APIKey authorizes the public password-verification endpoint.
	APIKey string
	// TokenURL/ClientID/ClientSecret configure the service-account client
	// credentials grant for admin endpoints (user lookup, claim updates).
	// When TokenURL is empty the admin endpoints are called unauthenticated,
	// which is only useful against a local emulator.
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	// RoleClaimPath is a JMESPath expression extracting the role claim from
	// the provider's user-record JSON. Defaults to "customAttributes.role".
	RoleClaimPath string
	// Issuer and Audience, when set, enable verification of the identity
	// token returned by password verification against the provider's JWKS.
	Issuer   string
	Audience string
	// HTTPClient is optional and defaults to a 30s-timeout client.
	HTTPClient *http.Client
}

// NewClient creates a Credential Store client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("credential store base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("credential store API key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	rolePath := cfg.RoleClaimPath
	if rolePath == "" {
		rolePath = defaultRoleClaimPath
	}
	compiled, err := jmespath.Compile(rolePath)
	if err != nil {
		return nil, fmt.Errorf("compile role claim path %q: %w", rolePath, err)
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		adminHTTP:  httpClient,
		rolePath:   compiled,
	}

	if cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		c.adminHTTP = cc.Client(ctx)
	}

	if cfg.Issuer != "" {
		provider, provErr := gooidc.NewProvider(ctx, cfg.Issuer)
		if provErr != nil {
			return nil, fmt.Errorf("identity token issuer discovery: %w", provErr)
		}
		audience := cfg.Audience
		if audience == "" {
			audience = cfg.ClientID
		}
		c.verifier = provider.Verifier(&gooidc.Config{ClientID: audience})
	}

	return c, nil
}

// signInResponse is the provider's password-verification payload.
type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// VerifyPassword checks the email/password pair against the provider.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) (domainauth.Identity, error) {
	if email == "" || password == "" {
		return domainauth.Identity{}, ErrInvalidCredentials
	}

	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp signInResponse
	endpoint := c.baseURL + "/v1/accounts:signInWithPassword?key=" + url.QueryEscape(c.apiKey)
	if err := c.post(ctx, c.httpClient, endpoint, body, &resp); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code >= 400 && se.code < 500 {
			return domainauth.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return domainauth.Identity{}, fmt.Errorf("verify password: %w", err)
	}
	if resp.LocalID == "" || resp.IDToken == "" {
		return domainauth.Identity{}, fmt.Errorf("%w: incomplete provider response", ErrInvalidCredentials)
	}

	role := domainauth.RoleNone
	if c.verifier != nil {
		tokenRole, err := c.verifyIDToken(ctx, resp.IDToken)
		if err != nil {
			return domainauth.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		role = tokenRole
	}

	return domainauth.Identity{
		UID:     resp.LocalID,
		Email:   resp.Email,
		Role:    role,
		IDToken: resp.IDToken,
	}, nil
}

// lookupResponse is the provider's user-record payload. CustomAttributes is a
// JSON object serialized as a string, mirroring the provider wire format.
type lookupResponse struct {
	Users []struct {
		LocalID          string `json:"localId"`
		Email            string `json:"email"`
		CustomAttributes string `json:"customAttributes"`
	} `json:"users"`
}

// GetUser fetches the live user record, extracting the role claim with the
// configured JMESPath expression.
func (c *Client) GetUser(ctx context.Context, uid string) (domainauth.UserRecord, error) {
	if uid == "" {
		return domainauth.UserRecord{}, ErrUserNotFound
	}

	var resp lookupResponse
	endpoint := c.baseURL + "/v1/accounts:lookup"
	if err := c.post(ctx, c.adminHTTP, endpoint, map[string]any{"localId": []string{uid}}, &resp); err != nil {
		return domainauth.UserRecord{}, fmt.Errorf("lookup user: %w", err)
	}
	if len(resp.Users) == 0 {
		return domainauth.UserRecord{}, ErrUserNotFound
	}

	u := resp.Users[0]
	record := map[string]any{
		"localId": u.LocalID,
		"email":   u.Email,
	}
	if u.CustomAttributes != "" {
		var attrs map[string]any
		if err := json.Unmarshal([]byte(u.CustomAttributes), &attrs); err == nil {
			record["customAttributes"] = attrs
		}
	}

	return domainauth.UserRecord{
		UID:   u.LocalID,
		Email: u.Email,
		Role:  c.extractRole(record),
	}, nil
}

// SetRoleClaim writes the role custom claim on the user record.
func (c *Client) SetRoleClaim(ctx context.Context, uid string, role domainauth.Role) error {
	if uid == "" {
		return ErrUserNotFound
	}

	attrs, err := json.Marshal(map[string]string{"role": string(role)})
	if err != nil {
		return fmt.Errorf("marshal custom attributes: %w", err)
	}

	body := map[string]any{
		"localId":          uid,
		"customAttributes": string(attrs),
	}
	endpoint := c.baseURL + "/v1/accounts:update"
	if postErr := c.post(ctx, c.adminHTTP, endpoint, body, nil); postErr != nil {
		return fmt.Errorf("set role claim: %w", postErr)
	}
	return nil
}

// extractRole applies the configured JMESPath expression to the user record.
// Anything other than a non-empty string result maps to RoleNone.
func (c *Client) extractRole(record map[string]any) domainauth.Role {
	out, err := c.rolePath.Search(record)
	if err != nil {
		return domainauth.RoleNone
	}
	if s, ok := out.(string); ok && s != "" {
		return domainauth.Role(s)
	}
	return domainauth.RoleNone
}

// verifyIDToken validates the provider-issued identity token and returns its
// embedded role claim, if any.
func (c *Client) verifyIDToken(ctx context.Context, raw string) (domainauth.Role, error) {
	idToken, err := c.verifier.Verify(ctx, raw)
	if err != nil {
		return domainauth.RoleNone, fmt.Errorf("verify identity token: %w", err)
	}
	var claims struct {
		Role string `json:"role"`
	}
	if claimErr := idToken.Claims(&claims); claimErr != nil {
		return domainauth.RoleNone, nil
	}
	return domainauth.Role(claims.Role), nil
}

// statusError carries a non-2xx provider response.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.code, e.body)
}

// post issues a JSON POST and decodes the response into out (when non-nil).
func (c *Client) post(ctx context.Context, client *http.Client, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(buf.String())}
	}

	if out == nil {
		return nil
	}
	if decErr := json.NewDecoder(resp.Body).Decode(out); decErr != nil {
		return fmt.Errorf("decode response: %w", decErr)
	}
	return nil
}

// Ping verifies connectivity to the Credential Store admin surface by listing
// a single account page. Used by the admin connection-test endpoint.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := c.baseURL + "/v1/accounts:batchGet"
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("maxResults", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.adminHTTP.Do(req)
	if err != nil {
		return fmt.Errorf("credential store unreachable: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusError{code: resp.StatusCode}
	}
	return nil
}
