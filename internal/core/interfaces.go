// Package core defines the contracts between the service layer and the data
// layer (ports in hexagonal architecture). Service implementations depend on
// these interfaces, not on concrete repositories.
package core

import (
	"context"
	"time"

	"github.com/codemates/website/internal/domain/model"
)

// InquiryRepository defines the interface for inquiry data operations.
type InquiryRepository interface {
	Create(ctx context.Context, req *model.CreateInquiryRequest) (*model.Inquiry, error)
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)
	// List returns inquiries newest-first.
	List(ctx context.Context, limit, offset int) ([]*model.Inquiry, error)
	UpdateStatus(ctx context.Context, req model.UpdateInquiryStatusRequest) (*model.Inquiry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, limit, offset int) ([]*model.Project, error)
	Update(ctx context.Context, id string, req model.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TeamMemberRepository defines the interface for team member data operations.
type TeamMemberRepository interface {
	Create(ctx context.Context, req *model.CreateTeamMemberRequest) (*model.TeamMember, error)
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)
	// List returns members ordered by display order, then name.
	List(ctx context.Context) ([]*model.TeamMember, error)
	Update(ctx context.Context, id string, req model.UpdateTeamMemberRequest) (*model.TeamMember, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CacheRepository defines the interface for caching operations. The public
// site uses it as a read-through cache in front of the document store.
type CacheRepository interface {
	// Set stores a value with the given key and TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key. Returns nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key. Returns true if the key existed.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the cache connection.
	Health(ctx context.Context) error
}
