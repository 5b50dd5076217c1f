package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/codemates/website/internal/data/pgxutil"
	"github.com/codemates/website/internal/domain/model"
)

// ProjectRepo provides database operations for portfolio projects.
type ProjectRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProjectRepo creates a new ProjectRepo with real time provider.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewProjectRepoWithTimeProvider creates a new ProjectRepo with a custom time
// provider (useful for tests).
func NewProjectRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProjectRepo {
	return &ProjectRepo{DB: db, timeProvider: tp}
}

const projectColumns = `id, title, description, image_url, technologies, category, status,
       url, github_url, demo_url, client, start_date, end_date, featured, created_at, updated_at`

// Create inserts a new project.
func (r *ProjectRepo) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	if req == nil {
		return nil, errors.New("create project request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	technologies := req.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Project
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO projects (
				title, description, image_url, technologies, category, status,
				url, github_url, demo_url, client, start_date, end_date, featured, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
			) RETURNING `+projectColumns,
			strings.TrimSpace(req.Title),
			req.Description,
			req.ImageURL,
			technologies,
			strings.TrimSpace(req.Category),
			req.Status,
			req.URL,
			req.GithubURL,
			req.DemoURL,
			req.Client,
			req.StartDate,
			req.EndDate,
			featured,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a project by ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var out model.Project
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+projectColumns+`
			FROM projects
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}
	return &out, nil
}

// List retrieves projects with pagination. Featured projects sort first,
// matching the public page ordering. A non-positive limit returns all rows.
func (r *ProjectRepo) List(ctx context.Context, limit, offset int) ([]*model.Project, error) {
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY featured DESC, created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	var rowsOut []model.Project
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Project])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	res := make([]*model.Project, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a project. Nil request fields are left unchanged.
func (r *ProjectRepo) Update(ctx context.Context, id string, req model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Project
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, id)
		query := "UPDATE projects SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + projectColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a project.
func (r *ProjectRepo) buildUpdateClause(req model.UpdateProjectRequest) (string, []any) {
	setParts := make([]string, 0, 14)
	args := make([]any, 0, 14)
	add := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		add("title", strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.Technologies != nil {
		add("technologies", *req.Technologies)
	}
	if req.Category != nil {
		add("category", strings.TrimSpace(*req.Category))
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.URL != nil {
		add("url", *req.URL)
	}
	if req.GithubURL != nil {
		add("github_url", *req.GithubURL)
	}
	if req.DemoURL != nil {
		add("demo_url", *req.DemoURL)
	}
	if req.Client != nil {
		add("client", *req.Client)
	}
	if req.StartDate != nil {
		add("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		add("end_date", *req.EndDate)
	}
	if req.Featured != nil {
		add("featured", *req.Featured)
	}
	add("updated_at", r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete deletes a project by ID.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return affected > 0, nil
}

func (r *ProjectRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrProjectNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrProjectTitleExists
	}
	return err
}
