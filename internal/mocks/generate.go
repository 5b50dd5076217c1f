// Package mocks provides mock implementations for testing the website services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockProjectRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(project, nil)
package mocks

// Generate mock for InquiryRepository interface from internal/core package.
// This creates MockInquiryRepository with methods for all InquiryRepository interface methods:
// Create, GetByID, List, UpdateStatus, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=inquiry_repository_mock.go github.com/codemates/website/internal/core InquiryRepository

// Generate mock for ProjectRepository interface from internal/core package.
// This creates MockProjectRepository with methods for all ProjectRepository interface methods:
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=project_repository_mock.go github.com/codemates/website/internal/core ProjectRepository

// Generate mock for TeamMemberRepository interface from internal/core package.
// This creates MockTeamMemberRepository with methods for all TeamMemberRepository interface methods:
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=team_member_repository_mock.go github.com/codemates/website/internal/core TeamMemberRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, Health
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/codemates/website/internal/core CacheRepository
