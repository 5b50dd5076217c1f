//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxProjectTitleLen       = 255
	maxProjectDescriptionLen = 5000
	maxProjectURLLen         = 2048
)

// ProjectStatus is the delivery state shown on the public projects page.
type ProjectStatus string

const (
	ProjectStatusCompleted ProjectStatus = "Completed"
	ProjectStatusOngoing   ProjectStatus = "Ongoing"
	ProjectStatusUpcoming  ProjectStatus = "Upcoming"
)

// Project is a portfolio entry managed through the admin area and rendered on
// the public site.
type Project struct {
	ID           string        `json:"id"                  db:"id"`
	Title        string        `json:"title"               db:"title"`
	Description  string        `json:"description"         db:"description"`
	ImageURL     *string       `json:"image,omitempty"     db:"image_url"`
	Technologies []string      `json:"technologies"        db:"technologies"`
	Category     string        `json:"category"            db:"category"`
	Status       ProjectStatus `json:"status"              db:"status"`
	URL          *string       `json:"url,omitempty"       db:"url"`
	GithubURL    *string       `json:"githubUrl,omitempty" db:"github_url"`
	DemoURL      *string       `json:"demoUrl,omitempty"   db:"demo_url"`
	Client       *string       `json:"client,omitempty"    db:"client"`
	StartDate    *string       `json:"startDate,omitempty" db:"start_date"`
	EndDate      *string       `json:"endDate,omitempty"   db:"end_date"`
	Featured     bool          `json:"featured"            db:"featured"`
	CreatedAt    time.Time     `json:"created_at"          db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"          db:"updated_at"`
}

// CreateProjectRequest contains fields to create a project.
type CreateProjectRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ImageURL     *string       `json:"image,omitempty"`
	Technologies []string      `json:"technologies"`
	Category     string        `json:"category"`
	Status       ProjectStatus `json:"status"`
	URL          *string       `json:"url,omitempty"`
	GithubURL    *string       `json:"githubUrl,omitempty"`
	DemoURL      *string       `json:"demoUrl,omitempty"`
	Client       *string       `json:"client,omitempty"`
	StartDate    *string       `json:"startDate,omitempty"`
	EndDate      *string       `json:"endDate,omitempty"`
	Featured     *bool         `json:"featured,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validateProjectTitle(r.Title); err != nil {
		return err
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Description) > maxProjectDescriptionLen {
		return errors.New("description cannot exceed 5000 characters")
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("category is required and cannot be empty")
	}
	if err := validateProjectStatus(r.Status); err != nil {
		return err
	}
	for _, u := range []*string{r.ImageURL, r.URL, r.GithubURL, r.DemoURL} {
		if err := validateOptionalURL(u); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProjectRequest contains optional fields to update a project.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	ImageURL     *string        `json:"image,omitempty"`
	Technologies *[]string      `json:"technologies,omitempty"`
	Category     *string        `json:"category,omitempty"`
	Status       *ProjectStatus `json:"status,omitempty"`
	URL          *string        `json:"url,omitempty"`
	GithubURL    *string        `json:"githubUrl,omitempty"`
	DemoURL      *string        `json:"demoUrl,omitempty"`
	Client       *string        `json:"client,omitempty"`
	StartDate    *string        `json:"startDate,omitempty"`
	EndDate      *string        `json:"endDate,omitempty"`
	Featured     *bool          `json:"featured,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	if r.Title == nil && r.Description == nil && r.ImageURL == nil && r.Technologies == nil &&
		r.Category == nil && r.Status == nil && r.URL == nil && r.GithubURL == nil &&
		r.DemoURL == nil && r.Client == nil && r.StartDate == nil && r.EndDate == nil && r.Featured == nil {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		if err := validateProjectTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Description != nil {
		if strings.TrimSpace(*r.Description) == "" {
			return errors.New("description cannot be empty")
		}
		if utf8.RuneCountInString(*r.Description) > maxProjectDescriptionLen {
			return errors.New("description cannot exceed 5000 characters")
		}
	}
	if r.Status != nil {
		if err := validateProjectStatus(*r.Status); err != nil {
			return err
		}
	}
	for _, u := range []*string{r.ImageURL, r.URL, r.GithubURL, r.DemoURL} {
		if err := validateOptionalURL(u); err != nil {
			return err
		}
	}
	return nil
}

func validateProjectTitle(title string) error {
	t := strings.TrimSpace(title)
	if t == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(t) > maxProjectTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	return nil
}

func validateProjectStatus(status ProjectStatus) error {
	switch status {
	case ProjectStatusCompleted, ProjectStatusOngoing, ProjectStatusUpcoming:
		return nil
	default:
		return errors.New("status must be one of: Completed, Ongoing, Upcoming")
	}
}

func validateOptionalURL(raw *string) error {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	if utf8.RuneCountInString(*raw) > maxProjectURLLen {
		return errors.New("url cannot exceed 2048 characters")
	}
	p, err := url.Parse(strings.TrimSpace(*raw))
	if err != nil || (p.Scheme != "http" && p.Scheme != "https") {
		return errors.New("url must use http or https scheme")
	}
	if p.Host == "" {
		return errors.New("url must have a valid host")
	}
	return nil
}
