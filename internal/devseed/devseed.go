// Package devseed populates a development database with sample content so the
// public site renders something useful on first run. It never touches data
// outside development mode and only seeds tables that are empty.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/codemates/website/internal/data"
	"github.com/codemates/website/internal/domain/model"
)

// Seeder seeds sample portfolio content for local development.
type Seeder struct {
	db       *sql.DB
	projects *data.ProjectRepo
	team     *data.TeamMemberRepo
	logger   *slog.Logger
}

// New creates a Seeder over the given database handle.
func New(db *sql.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		db:       db,
		projects: data.NewProjectRepo(db),
		team:     data.NewTeamMemberRepo(db),
		logger:   logger,
	}
}

// Run seeds projects and team members if their tables are empty.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedProjects(ctx); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := s.seedTeam(ctx); err != nil {
		return fmt.Errorf("seed team members: %w", err)
	}
	return nil
}

func (s *Seeder) seedProjects(ctx context.Context) error {
	empty, err := s.tableEmpty(ctx, "projects")
	if err != nil || !empty {
		return err
	}

	featured := true
	demoURL := "https://demo.example.com"
	for _, req := range []*model.CreateProjectRequest{
		{
			Title:        "Retail Analytics Dashboard",
			Description:  "Real-time sales and inventory dashboard for a regional retail chain.",
			Technologies: []string{"Go", "PostgreSQL", "React"},
			Category:     "Web Application",
			Status:       model.ProjectStatusCompleted,
			Featured:     &featured,
			DemoURL:      &demoURL,
		},
		{
			Title:        "Logistics Tracking API",
			Description:  "Shipment tracking API with webhook notifications and carrier integrations.",
			Technologies: []string{"Go", "Redis", "gRPC"},
			Category:     "Backend",
			Status:       model.ProjectStatusOngoing,
		},
		{
			Title:        "Booking Platform Redesign",
			Description:  "Upcoming rebuild of a legacy booking platform with a modern stack.",
			Technologies: []string{"Go", "PostgreSQL", "Vue"},
			Category:     "Web Application",
			Status:       model.ProjectStatusUpcoming,
		},
	} {
		if _, err := s.projects.Create(ctx, req); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "seeded sample projects", "count", 3)
	return nil
}

func (s *Seeder) seedTeam(ctx context.Context) error {
	empty, err := s.tableEmpty(ctx, "team_members")
	if err != nil || !empty {
		return err
	}

	for _, req := range []*model.CreateTeamMemberRequest{
		{Name: "Alex Rivera", Role: "Founder & Lead Engineer"},
		{Name: "Priya Shah", Role: "Product Designer"},
		{Name: "Daniel Okafor", Role: "Backend Engineer"},
	} {
		if _, err := s.team.Create(ctx, req); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "seeded sample team members", "count", 3)
	return nil
}

func (s *Seeder) tableEmpty(ctx context.Context, table string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}
