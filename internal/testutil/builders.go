package testutil

import "github.com/codemates/website/internal/domain/model"

// InquiryRequestBuilder provides a fluent interface for building CreateInquiryRequest objects for testing.
type InquiryRequestBuilder struct {
	req *model.CreateInquiryRequest
}

// NewInquiryRequest creates a new InquiryRequestBuilder with sensible contact-form defaults.
func NewInquiryRequest() *InquiryRequestBuilder {
	return &InquiryRequestBuilder{
		req: &model.CreateInquiryRequest{
			Name:        "Jordan Test",
			Email:       "jordan@example.com",
			ProjectType: "Web Application",
			Message:     StringPtr("We would like to discuss a project."),
		},
	}
}

// WithName sets the submitter name.
func (b *InquiryRequestBuilder) WithName(name string) *InquiryRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the submitter email.
func (b *InquiryRequestBuilder) WithEmail(email string) *InquiryRequestBuilder {
	b.req.Email = email
	return b
}

// WithProjectType sets the project type.
func (b *InquiryRequestBuilder) WithProjectType(projectType string) *InquiryRequestBuilder {
	b.req.ProjectType = projectType
	return b
}

// WithMessage sets the contact message.
func (b *InquiryRequestBuilder) WithMessage(message string) *InquiryRequestBuilder {
	b.req.Message = &message
	return b
}

// AsQuoteRequest switches the builder to a quote request with the detail fields filled.
func (b *InquiryRequestBuilder) AsQuoteRequest() *InquiryRequestBuilder {
	b.req.IsQuoteRequest = true
	b.req.Message = nil
	b.req.Company = StringPtr("Test Company")
	b.req.Budget = StringPtr("$10k-$25k")
	b.req.Timeline = StringPtr("3 months")
	b.req.Description = StringPtr("A full project description.")
	return b
}

// WithCompany sets the company.
func (b *InquiryRequestBuilder) WithCompany(company string) *InquiryRequestBuilder {
	b.req.Company = &company
	return b
}

// WithBudget sets the budget.
func (b *InquiryRequestBuilder) WithBudget(budget string) *InquiryRequestBuilder {
	b.req.Budget = &budget
	return b
}

// Build returns the constructed CreateInquiryRequest.
func (b *InquiryRequestBuilder) Build() *model.CreateInquiryRequest {
	return b.req
}

// ProjectRequestBuilder provides a fluent interface for building CreateProjectRequest objects for testing.
type ProjectRequestBuilder struct {
	req *model.CreateProjectRequest
}

// NewProjectRequest creates a new ProjectRequestBuilder with sensible defaults.
func NewProjectRequest() *ProjectRequestBuilder {
	return &ProjectRequestBuilder{
		req: &model.CreateProjectRequest{
			Title:        "Test Project",
			Description:  "A project used in tests.",
			Technologies: []string{"Go", "PostgreSQL"},
			Category:     "Web",
			Status:       model.ProjectStatusCompleted,
		},
	}
}

// WithTitle sets the project title.
func (b *ProjectRequestBuilder) WithTitle(title string) *ProjectRequestBuilder {
	b.req.Title = title
	return b
}

// WithDescription sets the description.
func (b *ProjectRequestBuilder) WithDescription(description string) *ProjectRequestBuilder {
	b.req.Description = description
	return b
}

// WithCategory sets the category.
func (b *ProjectRequestBuilder) WithCategory(category string) *ProjectRequestBuilder {
	b.req.Category = category
	return b
}

// WithStatus sets the delivery status.
func (b *ProjectRequestBuilder) WithStatus(status model.ProjectStatus) *ProjectRequestBuilder {
	b.req.Status = status
	return b
}

// WithTechnologies sets the technology list.
func (b *ProjectRequestBuilder) WithTechnologies(techs ...string) *ProjectRequestBuilder {
	b.req.Technologies = techs
	return b
}

// WithFeatured marks the project featured.
func (b *ProjectRequestBuilder) WithFeatured(featured bool) *ProjectRequestBuilder {
	b.req.Featured = &featured
	return b
}

// WithURL sets the live URL.
func (b *ProjectRequestBuilder) WithURL(url string) *ProjectRequestBuilder {
	b.req.URL = &url
	return b
}

// Build returns the constructed CreateProjectRequest.
func (b *ProjectRequestBuilder) Build() *model.CreateProjectRequest {
	return b.req
}

// TeamMemberRequestBuilder provides a fluent interface for building CreateTeamMemberRequest objects for testing.
type TeamMemberRequestBuilder struct {
	req *model.CreateTeamMemberRequest
}

// NewTeamMemberRequest creates a new TeamMemberRequestBuilder with sensible defaults.
func NewTeamMemberRequest() *TeamMemberRequestBuilder {
	return &TeamMemberRequestBuilder{
		req: &model.CreateTeamMemberRequest{
			Name: "Sam Test",
			Role: "Engineer",
		},
	}
}

// WithName sets the member name.
func (b *TeamMemberRequestBuilder) WithName(name string) *TeamMemberRequestBuilder {
	b.req.Name = name
	return b
}

// WithRole sets the member role.
func (b *TeamMemberRequestBuilder) WithRole(role string) *TeamMemberRequestBuilder {
	b.req.Role = role
	return b
}

// WithBio sets the bio.
func (b *TeamMemberRequestBuilder) WithBio(bio string) *TeamMemberRequestBuilder {
	b.req.Bio = &bio
	return b
}

// WithDisplayOrder sets an explicit display order.
func (b *TeamMemberRequestBuilder) WithDisplayOrder(order int) *TeamMemberRequestBuilder {
	b.req.DisplayOrder = &order
	return b
}

// Build returns the constructed CreateTeamMemberRequest.
func (b *TeamMemberRequestBuilder) Build() *model.CreateTeamMemberRequest {
	return b.req
}
