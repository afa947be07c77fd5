package queries

import (
	"context"

	"github.com/google/uuid"

	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	List(ctx context.Context) ([]*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail returns the view plus the stored password hash for
	// credential verification.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindAll(ctx context.Context) ([]*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*AuthorizedUserView, error) {
	return q.readStore.FindAll(ctx)
}
