package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	// List returns reviews filtered by moderation status; empty status
	// returns every review.
	List(ctx context.Context, status string) ([]*ReviewView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReviewView, error)
	// ListPublished returns approved reviews only, newest first. This is the
	// projection exposed to the public site.
	ListPublished(ctx context.Context) ([]*ReviewView, error)
}

type ReviewViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByStatus(ctx context.Context, status string) ([]*ReviewView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reviewQueriesImpl) List(ctx context.Context, status string) ([]*ReviewView, error) {
	return q.repo.FindByStatus(ctx, status)
}

func (q *reviewQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}

func (q *reviewQueriesImpl) ListPublished(ctx context.Context) ([]*ReviewView, error) {
	return q.repo.FindByStatus(ctx, "approved")
}
