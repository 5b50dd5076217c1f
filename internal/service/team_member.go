package service

import (
	"context"

	"github.com/codemates/website/internal/core"
	"github.com/codemates/website/internal/domain/model"
)

// TeamMemberServiceOptions groups dependencies for TeamMemberService.
type TeamMemberServiceOptions struct {
	Repo core.TeamMemberRepository
}

// TeamMemberService manages the people shown on the about page.
type TeamMemberService struct {
	repo core.TeamMemberRepository
}

// NewTeamMemberService constructs a new TeamMemberService.
func NewTeamMemberService(opts TeamMemberServiceOptions) *TeamMemberService {
	return &TeamMemberService{repo: opts.Repo}
}

// Create adds a team member.
func (s *TeamMemberService) Create(ctx context.Context, req *model.CreateTeamMemberRequest) (*model.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a team member by ID.
func (s *TeamMemberService) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns team members in display order.
func (s *TeamMemberService) List(ctx context.Context) ([]*model.TeamMember, error) {
	return s.repo.List(ctx)
}

// Update updates a team member.
func (s *TeamMemberService) Update(ctx context.Context, id string, req model.UpdateTeamMemberRequest) (*model.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

// Delete removes a team member.
func (s *TeamMemberService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
