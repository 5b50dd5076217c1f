//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTeamNameLen = 200
	maxTeamRoleLen = 200
	maxTeamBioLen  = 2000
)

// TeamMember is a person shown on the about page and managed in the admin area.
type TeamMember struct {
	ID           string    `json:"id"                    db:"id"`
	Name         string    `json:"name"                  db:"name"`
	Role         string    `json:"role"                  db:"role"`
	Bio          *string   `json:"bio,omitempty"         db:"bio"`
	PhotoURL     *string   `json:"photoUrl,omitempty"    db:"photo_url"`
	LinkedinURL  *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	GithubURL    *string   `json:"githubUrl,omitempty"   db:"github_url"`
	DisplayOrder int       `json:"displayOrder"          db:"display_order"`
	CreatedAt    time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"            db:"updated_at"`
}

// CreateTeamMemberRequest contains fields to add a team member.
type CreateTeamMemberRequest struct {
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Bio          *string `json:"bio,omitempty"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	LinkedinURL  *string `json:"linkedinUrl,omitempty"`
	GithubURL    *string `json:"githubUrl,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

func (r *CreateTeamMemberRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Name) > maxTeamNameLen {
		return errors.New("name cannot exceed 200 characters")
	}
	if strings.TrimSpace(r.Role) == "" {
		return errors.New("role is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Role) > maxTeamRoleLen {
		return errors.New("role cannot exceed 200 characters")
	}
	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > maxTeamBioLen {
		return errors.New("bio cannot exceed 2000 characters")
	}
	if r.DisplayOrder != nil && *r.DisplayOrder < 0 {
		return errors.New("displayOrder must be non-negative")
	}
	for _, u := range []*string{r.PhotoURL, r.LinkedinURL, r.GithubURL} {
		if err := validateOptionalURL(u); err != nil {
			return err
		}
	}
	return nil
}

// UpdateTeamMemberRequest contains optional fields to update a team member.
type UpdateTeamMemberRequest struct {
	Name         *string `json:"name,omitempty"`
	Role         *string `json:"role,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	LinkedinURL  *string `json:"linkedinUrl,omitempty"`
	GithubURL    *string `json:"githubUrl,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

func (r *UpdateTeamMemberRequest) Validate() error {
	if r.Name == nil && r.Role == nil && r.Bio == nil && r.PhotoURL == nil &&
		r.LinkedinURL == nil && r.GithubURL == nil && r.DisplayOrder == nil {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(*r.Name) > maxTeamNameLen {
			return errors.New("name cannot exceed 200 characters")
		}
	}
	if r.Role != nil && strings.TrimSpace(*r.Role) == "" {
		return errors.New("role cannot be empty")
	}
	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > maxTeamBioLen {
		return errors.New("bio cannot exceed 2000 characters")
	}
	if r.DisplayOrder != nil && *r.DisplayOrder < 0 {
		return errors.New("displayOrder must be non-negative")
	}
	for _, u := range []*string{r.PhotoURL, r.LinkedinURL, r.GithubURL} {
		if err := validateOptionalURL(u); err != nil {
			return err
		}
	}
	return nil
}
