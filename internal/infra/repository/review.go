package repository

import (
	"context"
	"errors"
	"time"

	domreview "pestdesk/internal/domain/review"
	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

const insertReview = `
INSERT INTO reviews (id, customer_id, rating, comment, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *ReviewRepository) Create(ctx context.Context, rev *domreview.Review) error {
	_, err := r.db.Exec(ctx, insertReview,
		rev.ID(),
		rev.CustomerID(),
		rev.Rating().Value(),
		rev.Comment().String(),
		rev.Status().String(),
		rev.CreatedAt(),
		rev.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

const updateReview = `
UPDATE reviews
SET status = $2, moderated_by = $3,
    moderated_at = CASE WHEN $3::uuid IS NULL THEN NULL ELSE now() END,
    updated_at = now()
WHERE id = $1`

func (r *ReviewRepository) Update(ctx context.Context, rev *domreview.Review) error {
	tag, err := r.db.Exec(ctx, updateReview,
		rev.ID(),
		rev.Status().String(),
		rev.ModeratedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectReviewByID = `
SELECT id, customer_id, rating, comment, status, moderated_by, created_at, updated_at
FROM reviews
WHERE id = $1`

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domreview.Review, error) {
	var (
		revID, customerID    uuid.UUID
		ratingValue          int
		commentText          string
		statusStr            string
		moderatedBy          *uuid.UUID
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, selectReviewByID, id).Scan(
		&revID, &customerID, &ratingValue, &commentText, &statusStr, &moderatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}

	rating, err := domreview.NewRating(ratingValue)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid review rating in store", err)
	}
	comment, err := domreview.NewComment(commentText)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid review comment in store", err)
	}
	status, err := domreview.NewModerationStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid review status in store", err)
	}

	return domreview.ReconstructReview(revID, customerID, rating, comment, status, moderatedBy, createdAt, updatedAt), nil
}
