//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/jwt"
	"pestdesk/internal/pkg/password"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserReadStore struct {
	view *queries.AuthorizedUserView
	hash string
}

func (f *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if f.view == nil || f.view.ID != id {
		return nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
	}
	return f.view, nil
}

func (f *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	if f.view == nil || f.view.Email != email {
		return nil, "", infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
	}
	return f.view, f.hash, nil
}

func (f *fakeUserReadStore) FindAll(_ context.Context) ([]*queries.AuthorizedUserView, error) {
	if f.view == nil {
		return nil, nil
	}
	return []*queries.AuthorizedUserView{f.view}, nil
}

type fakeSessionStore struct {
	tokens map[uuid.UUID]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{tokens: make(map[uuid.UUID]string)}
}

func (f *fakeSessionStore) Save(_ context.Context, userID uuid.UUID, refreshToken string, _ time.Duration) error {
	f.tokens[userID] = refreshToken
	return nil
}

func (f *fakeSessionStore) Validate(_ context.Context, userID uuid.UUID, refreshToken string) (bool, error) {
	stored, ok := f.tokens[userID]
	return ok && stored == refreshToken, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	delete(f.tokens, userID)
	return nil
}

type fakeUserRepo struct {
	lastLoginUpdates []uuid.UUID
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	f.lastLoginUpdates = append(f.lastLoginUpdates, userID)
	return nil
}

func newAuthFixture(t *testing.T) (*fakeUserReadStore, *fakeSessionStore, commands.AuthCommands, *queries.AuthorizedUserView) {
	t.Helper()

	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)

	view := &queries.AuthorizedUserView{
		ID:    uuid.New(),
		Email: "staff@example.com",
		Name:  "Test Operator",
		Role:  "operator",
	}
	readStore := &fakeUserReadStore{view: view, hash: hash}
	sessions := newFakeSessionStore()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	uow := &fakeUoW{tx: &fakeTx{users: &fakeUserRepo{}}}

	return readStore, sessions, commands.NewAuthCommands(uow, readStore, jwtService, sessions), view
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success: issues a token pair and records the session", func(t *testing.T) {
		_, sessions, auth, view := newAuthFixture(t)

		result, err := auth.Login(ctx, view.Email, "correct-horse")
		require.NoError(t, err)

		assert.Equal(t, view.ID, result.UserID)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
		assert.Equal(t, result.TokenPair.RefreshToken, sessions.tokens[view.ID])
	})

	t.Run("error: wrong password", func(t *testing.T) {
		_, _, auth, view := newAuthFixture(t)

		_, err := auth.Login(ctx, view.Email, "wrong-password")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("error: unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, _, auth, _ := newAuthFixture(t)

		_, err := auth.Login(ctx, "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rotates the refresh token", func(t *testing.T) {
		_, sessions, auth, view := newAuthFixture(t)

		result, err := auth.Login(ctx, view.Email, "correct-horse")
		require.NoError(t, err)
		first := result.TokenPair.RefreshToken

		pair, err := auth.RefreshToken(ctx, first)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.Equal(t, pair.RefreshToken, sessions.tokens[view.ID])
	})

	t.Run("error: revoked session", func(t *testing.T) {
		_, sessions, auth, view := newAuthFixture(t)

		result, err := auth.Login(ctx, view.Email, "correct-horse")
		require.NoError(t, err)
		require.NoError(t, auth.Logout(ctx, view.ID))
		assert.Empty(t, sessions.tokens)

		_, err = auth.RefreshToken(ctx, result.TokenPair.RefreshToken)
		assert.ErrorIs(t, err, commands.ErrSessionRevoked)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		_, _, auth, _ := newAuthFixture(t)

		_, err := auth.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("error: access token cannot be used as a refresh token", func(t *testing.T) {
		_, _, auth, view := newAuthFixture(t)

		result, err := auth.Login(ctx, view.Email, "correct-horse")
		require.NoError(t, err)

		_, err = auth.RefreshToken(ctx, result.TokenPair.AccessToken)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})
}
