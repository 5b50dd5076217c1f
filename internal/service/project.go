package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/codemates/website/internal/core"
	"github.com/codemates/website/internal/domain/model"
)

// projectListCacheKey caches the full project list served to the public site.
const projectListCacheKey = "projects:list"

// ProjectServiceOptions groups dependencies for ProjectService.
type ProjectServiceOptions struct {
	Repo core.ProjectRepository
	// Cache is optional. When present, public list reads go through it and
	// admin mutations invalidate it.
	Cache    core.CacheRepository
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// ProjectService manages the portfolio: admin CRUD plus a cached read path
// for the public projects page.
type ProjectService struct {
	repo     core.ProjectRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

const defaultProjectCacheTTL = 5 * time.Minute

// NewProjectService constructs a new ProjectService.
func NewProjectService(opts ProjectServiceOptions) *ProjectService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultProjectCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectService{
		repo:     opts.Repo,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// Create creates a project and invalidates the public list cache.
func (s *ProjectService) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	project, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return project, nil
}

// GetByID retrieves a project by ID.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of projects straight from the document store. Admin
// listings use this path so edits are visible immediately.
func (s *ProjectService) List(ctx context.Context, limit, offset int) ([]*model.Project, error) {
	return s.repo.List(ctx, limit, offset)
}

// ListPublic returns the projects shown on the public site, read through the
// cache when one is configured. Cache failures fall back to the store.
func (s *ProjectService) ListPublic(ctx context.Context) ([]*model.Project, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, projectListCacheKey); err == nil && cached != nil {
			var projects []*model.Project
			if unmarshalErr := json.Unmarshal(cached, &projects); unmarshalErr == nil {
				return projects, nil
			}
		} else if err != nil {
			s.logger.Warn("project cache read failed", "error", err)
		}
	}

	projects, err := s.repo.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, marshalErr := json.Marshal(projects); marshalErr == nil {
			if setErr := s.cache.Set(ctx, projectListCacheKey, payload, s.cacheTTL); setErr != nil {
				s.logger.Warn("project cache write failed", "error", setErr)
			}
		}
	}
	return projects, nil
}

// Update updates a project and invalidates the public list cache.
func (s *ProjectService) Update(ctx context.Context, id string, req model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	project, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return project, nil
}

// Delete removes a project and invalidates the public list cache.
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.invalidate(ctx)
	return true, nil
}

func (s *ProjectService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, projectListCacheKey); err != nil {
		s.logger.Warn("project cache invalidation failed", "error", err)
	}
}
