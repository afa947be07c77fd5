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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const selectUserView = `
SELECT id, email, name, role, last_login_at
FROM users`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, selectUserView+" WHERE id = $1 AND is_active", id).Scan(
		&v.ID, &v.Email, &v.Name, &v.Role, &v.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v            queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, role, last_login_at, password_hash FROM users WHERE email = $1 AND is_active`, email,
	).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.LastLoginAt, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, passwordHash, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	rows, err := r.db.Query(ctx, selectUserView+" ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var views []*queries.AuthorizedUserView
	for rows.Next() {
		var v queries.AuthorizedUserView
		if scanErr := rows.Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.LastLoginAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return views, nil
}
