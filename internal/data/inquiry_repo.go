package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/codemates/website/internal/data/pgxutil"
	"github.com/codemates/website/internal/domain/model"
)

// InquiryRepo provides database operations for inquiries.
type InquiryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInquiryRepo creates a new InquiryRepo with real time provider.
func NewInquiryRepo(db *sql.DB) *InquiryRepo {
	return &InquiryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewInquiryRepoWithTimeProvider creates a new InquiryRepo with a custom time
// provider (useful for tests).
func NewInquiryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *InquiryRepo {
	return &InquiryRepo{DB: db, timeProvider: tp}
}

const inquiryColumns = `id, name, email, project_type, is_quote_request, message,
       company, budget, timeline, description, status, created_at, updated_at, viewed_at`

// Create inserts a new inquiry. Status always starts at New.
func (r *InquiryRepo) Create(ctx context.Context, req *model.CreateInquiryRequest) (*model.Inquiry, error) {
	if req == nil {
		return nil, errors.New("create inquiry request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Inquiry
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO inquiries (
				name, email, project_type, is_quote_request, message,
				company, budget, timeline, description, status, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			) RETURNING `+inquiryColumns,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Email),
			strings.TrimSpace(req.ProjectType),
			req.IsQuoteRequest,
			req.Message,
			req.Company,
			req.Budget,
			req.Timeline,
			req.Description,
			model.InquiryStatusNew,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Inquiry])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return &out, nil
}

// GetByID retrieves an inquiry by ID.
func (r *InquiryRepo) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	var out model.Inquiry
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+inquiryColumns+`
			FROM inquiries
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Inquiry])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry by ID: %w", err)
	}
	return &out, nil
}

// List retrieves inquiries newest-first with pagination.
func (r *InquiryRepo) List(ctx context.Context, limit, offset int) ([]*model.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Inquiry
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+inquiryColumns+`
			FROM inquiries
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Inquiry])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	res := make([]*model.Inquiry, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus changes an inquiry's workflow status. The first transition out
// of New stamps viewed_at; later transitions leave it untouched.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, req model.UpdateInquiryStatusRequest) (*model.Inquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Inquiry
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE inquiries
			SET status = $2,
			    updated_at = $3,
			    viewed_at = CASE
			        WHEN viewed_at IS NULL AND $2 <> 'New' THEN $3
			        ELSE viewed_at
			    END
			WHERE id = $1
			RETURNING `+inquiryColumns, req.ID, req.Status, now)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Inquiry])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return &out, nil
}

// Delete deletes an inquiry by ID.
func (r *InquiryRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete inquiry: %w", err)
	}
	return affected > 0, nil
}
