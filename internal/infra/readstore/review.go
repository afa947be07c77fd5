package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"
	"pestdesk/internal/usecase/queries"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const selectReviewView = `
SELECT r.id, r.customer_id, c.name, r.rating, r.comment, r.status, r.moderated_by, r.moderated_at, r.created_at
FROM reviews r
JOIN customers c ON c.id = r.customer_id`

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row := r.db.QueryRow(ctx, selectReviewView+" WHERE r.id = $1", id)
	view, err := scanReviewView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}
	return view, nil
}

func (r *ReviewReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.ReviewView, error) {
	query := selectReviewView + " ORDER BY r.created_at DESC"
	args := []any{}
	if status != "" {
		query = selectReviewView + " WHERE r.status = $1 ORDER BY r.created_at DESC"
		args = append(args, status)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	return collectReviewViews(rows)
}

func (r *ReviewReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, selectReviewView+" WHERE r.customer_id = $1 ORDER BY r.created_at DESC", customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by customer", err)
	}
	return collectReviewViews(rows)
}

func collectReviewViews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return views, nil
}

func scanReviewView(row pgx.Row) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.Rating, &v.Comment,
		&v.Status, &v.ModeratedBy, &v.ModeratedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
