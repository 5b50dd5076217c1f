package bootstrap

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/codemates/website/config"
	"github.com/codemates/website/internal/adapters/identity"
	"github.com/codemates/website/internal/adapters/sessiontoken"
	"github.com/codemates/website/internal/data"
	"github.com/codemates/website/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Inquiries *service.InquiryService
	Projects  *service.ProjectService
	Team      *service.TeamMemberService

	// CredentialStore backs the admin test-connection endpoint.
	CredentialStore *identity.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient *redis.Client
	Logger      *slog.Logger
}

// NewServices wires repositories, adapters and services.
func NewServices(ctx context.Context, deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, errors.New("service dependencies are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	inquiryRepo := data.NewInquiryRepo(deps.DB)
	projectRepo := data.NewProjectRepo(deps.DB)
	teamRepo := data.NewTeamMemberRepo(deps.DB)

	var cacheRepo *data.RedisCacheRepo
	if deps.RedisClient != nil {
		cacheRepo = data.NewRedisCacheRepo(deps.RedisClient)
	}

	authSvc, credStore, err := buildAuthService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	projectOpts := service.ProjectServiceOptions{
		Repo:     projectRepo,
		CacheTTL: cfg.Cache.ProjectTTL,
		Logger:   logger,
	}
	if cacheRepo != nil {
		projectOpts.Cache = cacheRepo
	}

	return &ServiceContainer{
		Auth:            authSvc,
		Inquiries:       service.NewInquiryService(service.InquiryServiceOptions{Repo: inquiryRepo, Logger: logger}),
		Projects:        service.NewProjectService(projectOpts),
		Team:            service.NewTeamMemberService(service.TeamMemberServiceOptions{Repo: teamRepo}),
		CredentialStore: credStore,
	}, nil
}

// buildAuthService assembles the Credential Store client, the session codec
// and the auth service on top of them.
func buildAuthService(
	ctx context.Context,
	cfg *config.AppConfig,
	logger *slog.Logger,
) (*service.AuthService, *identity.Client, error) {
	secret := cfg.Auth.SessionSecret
	if secret == "" {
		if !cfg.IsDev {
			return nil, nil, errors.New("SESSION_SECRET is required outside development mode")
		}
		secret = randomDevSecret()
		logger.Warn("SESSION_SECRET not set, using a random per-process secret", "mode", "dev")
	}

	codec, err := sessiontoken.NewCodec(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("create session codec: %w", err)
	}

	credStore, err := identity.NewClient(ctx, identity.Config{
		BaseURL:       cfg.Auth.Identity.BaseURL,
		APIKey:        cfg.Auth.Identity.APIKey,
		TokenURL:      cfg.Auth.Identity.TokenURL,
		ClientID:      cfg.Auth.Identity.ClientID,
		ClientSecret:  cfg.Auth.Identity.ClientSecret,
		Scopes:        cfg.Auth.Identity.Scopes,
		RoleClaimPath: cfg.Auth.Identity.RoleClaimPath,
		Issuer:        cfg.Auth.Identity.Issuer,
		Audience:      cfg.Auth.Identity.Audience,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create credential store client: %w", err)
	}

	if len(cfg.Auth.AdminEmails) == 0 {
		logger.Warn("ADMIN_EMAILS is empty, no one can log in to the admin area")
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Credentials:   credStore,
		Codec:         codec,
		AllowedEmails: cfg.Auth.AdminEmails,
		SessionTTL:    cfg.Auth.SessionTTL,
		Logger:        logger,
	})

	return authSvc, credStore, nil
}

func randomDevSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
