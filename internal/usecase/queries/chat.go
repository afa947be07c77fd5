package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ChatQueries interface {
	// History returns messages for one customer thread in ascending sent
	// order. A zero before returns the most recent page.
	History(ctx context.Context, customerID uuid.UUID, before time.Time, limit int) ([]*MessageView, error)
}

type MessageViewRepo interface {
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, before time.Time, limit int32) ([]*MessageView, error)
}

type chatQueriesImpl struct {
	repo MessageViewRepo
}

func NewChatQueries(repo MessageViewRepo) ChatQueries {
	return &chatQueriesImpl{repo: repo}
}

func (q *chatQueriesImpl) History(ctx context.Context, customerID uuid.UUID, before time.Time, limit int) ([]*MessageView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if before.IsZero() {
		before = time.Now().Add(time.Minute)
	}
	return q.repo.FindByCustomerID(ctx, customerID, before, int32(limit))
}
