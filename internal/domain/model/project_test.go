package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProject() CreateProjectRequest {
	return CreateProjectRequest{
		Title:        "Retail Dashboard",
		Description:  "Analytics dashboard for retail clients.",
		Technologies: []string{"Go"},
		Category:     "Web",
		Status:       ProjectStatusCompleted,
	}
}

func TestCreateProjectRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateProjectRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*CreateProjectRequest) {}},
		{
			name:    "missing title",
			mutate:  func(r *CreateProjectRequest) { r.Title = "  " },
			wantErr: "title is required",
		},
		{
			name:    "title too long",
			mutate:  func(r *CreateProjectRequest) { r.Title = strings.Repeat("x", 256) },
			wantErr: "title cannot exceed",
		},
		{
			name:    "missing description",
			mutate:  func(r *CreateProjectRequest) { r.Description = "" },
			wantErr: "description is required",
		},
		{
			name:    "missing category",
			mutate:  func(r *CreateProjectRequest) { r.Category = "" },
			wantErr: "category is required",
		},
		{
			name:    "unknown status",
			mutate:  func(r *CreateProjectRequest) { r.Status = "Cancelled" },
			wantErr: "status must be one of",
		},
		{
			name:    "url without scheme",
			mutate:  func(r *CreateProjectRequest) { u := "example.com"; r.URL = &u },
			wantErr: "http or https",
		},
		{
			name:    "ftp url rejected",
			mutate:  func(r *CreateProjectRequest) { u := "ftp://example.com"; r.GithubURL = &u },
			wantErr: "http or https",
		},
		{
			name:   "https url accepted",
			mutate: func(r *CreateProjectRequest) { u := "https://example.com/demo"; r.DemoURL = &u },
		},
		{
			name:   "blank optional url ignored",
			mutate: func(r *CreateProjectRequest) { u := "  "; r.ImageURL = &u },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProject()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateProjectRequest_Validate(t *testing.T) {
	t.Run("empty change set rejected", func(t *testing.T) {
		req := UpdateProjectRequest{}
		assert.ErrorContains(t, req.Validate(), "at least one field")
	})

	t.Run("single field is enough", func(t *testing.T) {
		title := "New Title"
		req := UpdateProjectRequest{Title: &title}
		assert.NoError(t, req.Validate())
	})

	t.Run("blank title rejected", func(t *testing.T) {
		title := "   "
		req := UpdateProjectRequest{Title: &title}
		assert.ErrorContains(t, req.Validate(), "title is required")
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		status := ProjectStatus("Paused")
		req := UpdateProjectRequest{Status: &status}
		assert.ErrorContains(t, req.Validate(), "status must be one of")
	})
}
