package queries

import (
	"context"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, filter CustomerFilter) ([]*CustomerView, error)
}

// CustomerFilter narrows the customer list. Zero value means no filtering.
type CustomerFilter struct {
	ServicePlan string
	Tag         string
	Search      string
}

type CustomerViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	Find(ctx context.Context, filter CustomerFilter) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *customerQueriesImpl) List(ctx context.Context, filter CustomerFilter) ([]*CustomerView, error) {
	return q.repo.Find(ctx, filter)
}
