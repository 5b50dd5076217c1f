//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxInquiryNameLen    = 200
	maxInquiryEmailLen   = 320
	maxInquiryTextLen    = 5000
	maxInquiryShortField = 200
)

// InquiryStatus tracks how far an inquiry has progressed in the admin workflow.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "New"
	InquiryStatusViewed    InquiryStatus = "Viewed"
	InquiryStatusResponded InquiryStatus = "Responded"
	InquiryStatusArchived  InquiryStatus = "Archived"
)

// ValidInquiryStatuses lists the statuses an admin may assign.
func ValidInquiryStatuses() []InquiryStatus {
	return []InquiryStatus{InquiryStatusNew, InquiryStatusViewed, InquiryStatusResponded, InquiryStatusArchived}
}

// Inquiry is a contact or quote request submitted through the public site.
// Quote requests carry the company/budget/timeline/description fields;
// plain contact submissions carry the message.
type Inquiry struct {
	ID             string        `json:"id"                    db:"id"`
	Name           string        `json:"name"                  db:"name"`
	Email          string        `json:"email"                 db:"email"`
	ProjectType    string        `json:"project_type"          db:"project_type"`
	IsQuoteRequest bool          `json:"is_quote_request"      db:"is_quote_request"`
	Message        *string       `json:"message,omitempty"     db:"message"`
	Company        *string       `json:"company,omitempty"     db:"company"`
	Budget         *string       `json:"budget,omitempty"      db:"budget"`
	Timeline       *string       `json:"timeline,omitempty"    db:"timeline"`
	Description    *string       `json:"description,omitempty" db:"description"`
	Status         InquiryStatus `json:"status"                db:"status"`
	CreatedAt      time.Time     `json:"created_at"            db:"created_at"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"  db:"updated_at"`
	ViewedAt       *time.Time    `json:"viewed_at,omitempty"   db:"viewed_at"`
}

// CreateInquiryRequest carries a public contact-form or quote-form submission.
type CreateInquiryRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ProjectType    string  `json:"projectType"`
	IsQuoteRequest bool    `json:"isQuoteRequest"`
	Message        *string `json:"message,omitempty"`
	Company        *string `json:"company,omitempty"`
	Budget         *string `json:"budget,omitempty"`
	Timeline       *string `json:"timeline,omitempty"`
	Description    *string `json:"description,omitempty"`
}

// Validate enforces the intake contract: name/email/projectType always,
// message for contact submissions, company/budget/timeline/description for
// quote requests.
func (r *CreateInquiryRequest) Validate() error {
	if err := validateInquiryIdentity(r.Name, r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.ProjectType) == "" {
		return errors.New("project type is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.ProjectType) > maxInquiryShortField {
		return errors.New("project type cannot exceed 200 characters")
	}

	if r.IsQuoteRequest {
		return r.validateQuoteFields()
	}
	if !hasText(r.Message) {
		return errors.New("message is required and cannot be empty")
	}
	if utf8.RuneCountInString(*r.Message) > maxInquiryTextLen {
		return errors.New("message cannot exceed 5000 characters")
	}
	return nil
}

func (r *CreateInquiryRequest) validateQuoteFields() error {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"company", r.Company},
		{"budget", r.Budget},
		{"timeline", r.Timeline},
		{"description", r.Description},
	} {
		if !hasText(f.value) {
			return errors.New(f.name + " is required and cannot be empty")
		}
	}
	if utf8.RuneCountInString(*r.Description) > maxInquiryTextLen {
		return errors.New("description cannot exceed 5000 characters")
	}
	return nil
}

func validateInquiryIdentity(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxInquiryNameLen {
		return errors.New("name cannot exceed 200 characters")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required and cannot be empty")
	}
	if utf8.RuneCountInString(email) > maxInquiryEmailLen {
		return errors.New("email cannot exceed 320 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("email must be a valid address")
	}
	return nil
}

// UpdateInquiryStatusRequest changes an inquiry's workflow status.
type UpdateInquiryStatusRequest struct {
	ID     string        `json:"id"`
	Status InquiryStatus `json:"status"`
}

func (r *UpdateInquiryStatusRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("id is required and cannot be empty")
	}
	for _, s := range ValidInquiryStatuses() {
		if r.Status == s {
			return nil
		}
	}
	return errors.New("status must be one of: New, Viewed, Responded, Archived")
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
