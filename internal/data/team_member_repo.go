package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/codemates/website/internal/data/pgxutil"
	"github.com/codemates/website/internal/domain/model"
)

// TeamMemberRepo provides database operations for team members.
type TeamMemberRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTeamMemberRepo creates a new TeamMemberRepo with real time provider.
func NewTeamMemberRepo(db *sql.DB) *TeamMemberRepo {
	return &TeamMemberRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTeamMemberRepoWithTimeProvider creates a new TeamMemberRepo with a custom
// time provider (useful for tests).
func NewTeamMemberRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TeamMemberRepo {
	return &TeamMemberRepo{DB: db, timeProvider: tp}
}

const teamMemberColumns = `id, name, role, bio, photo_url, linkedin_url, github_url,
       display_order, created_at, updated_at`

// Create inserts a new team member. When no display order is given the member
// is appended after the current maximum.
func (r *TeamMemberRepo) Create(ctx context.Context, req *model.CreateTeamMemberRequest) (*model.TeamMember, error) {
	if req == nil {
		return nil, errors.New("create team member request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.TeamMember
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO team_members (
				name, role, bio, photo_url, linkedin_url, github_url, display_order, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6,
				COALESCE($7, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM team_members)),
				$8
			) RETURNING `+teamMemberColumns,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Role),
			req.Bio,
			req.PhotoURL,
			req.LinkedinURL,
			req.GithubURL,
			req.DisplayOrder,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TeamMember])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a team member by ID.
func (r *TeamMemberRepo) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	var out model.TeamMember
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+teamMemberColumns+`
			FROM team_members
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TeamMember])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member by ID: %w", err)
	}
	return &out, nil
}

// List retrieves all team members ordered by display order, then name.
func (r *TeamMemberRepo) List(ctx context.Context) ([]*model.TeamMember, error) {
	var rowsOut []model.TeamMember
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+teamMemberColumns+`
			FROM team_members
			ORDER BY display_order ASC, name ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.TeamMember])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	res := make([]*model.TeamMember, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a team member. Nil request fields are left unchanged.
func (r *TeamMemberRepo) Update(ctx context.Context, id string, req model.UpdateTeamMemberRequest) (*model.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.TeamMember
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, id)
		query := "UPDATE team_members SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + teamMemberColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TeamMember])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return &out, nil
}

func (r *TeamMemberRepo) buildUpdateClause(req model.UpdateTeamMemberRequest) (string, []any) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 8)
	add := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		add("name", strings.TrimSpace(*req.Name))
	}
	if req.Role != nil {
		add("role", strings.TrimSpace(*req.Role))
	}
	if req.Bio != nil {
		add("bio", *req.Bio)
	}
	if req.PhotoURL != nil {
		add("photo_url", *req.PhotoURL)
	}
	if req.LinkedinURL != nil {
		add("linkedin_url", *req.LinkedinURL)
	}
	if req.GithubURL != nil {
		add("github_url", *req.GithubURL)
	}
	if req.DisplayOrder != nil {
		add("display_order", *req.DisplayOrder)
	}
	add("updated_at", r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete deletes a team member by ID.
func (r *TeamMemberRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete team member: %w", err)
	}
	return affected > 0, nil
}
