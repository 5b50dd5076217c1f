package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codemates/website/internal/core"
	"github.com/codemates/website/internal/domain/model"
)

// InquiryServiceOptions groups dependencies for InquiryService.
type InquiryServiceOptions struct {
	Repo   core.InquiryRepository
	Logger *slog.Logger
}

// InquiryService handles contact and quote submissions from the public site
// and their triage through the admin area.
type InquiryService struct {
	repo   core.InquiryRepository
	logger *slog.Logger
}

// NewInquiryService constructs a new InquiryService.
func NewInquiryService(opts InquiryServiceOptions) *InquiryService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &InquiryService{repo: opts.Repo, logger: logger}
}

// Submit records a public-site inquiry. New inquiries always start in the New
// status regardless of what the request carried.
func (s *InquiryService) Submit(ctx context.Context, req *model.CreateInquiryRequest) (*model.Inquiry, error) {
	if req == nil {
		return nil, fmt.Errorf("create inquiry request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inq, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.logger.Info("inquiry received", "id", inq.ID, "type", inq.ProjectType)
	return inq, nil
}

// GetByID retrieves an inquiry by ID.
func (s *InquiryService) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of inquiries, newest first.
func (s *InquiryService) List(ctx context.Context, limit, offset int) ([]*model.Inquiry, error) {
	return s.repo.List(ctx, limit, offset)
}

// UpdateStatus moves an inquiry through its triage states. The first move out
// of New stamps the viewed time.
func (s *InquiryService) UpdateStatus(ctx context.Context, req model.UpdateInquiryStatusRequest) (*model.Inquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, req)
}

// Delete removes an inquiry.
func (s *InquiryService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
