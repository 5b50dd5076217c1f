package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectTitleExists = errors.New("project title already exists")
	ErrTeamMemberNotFound = errors.New("team member not found")
)
