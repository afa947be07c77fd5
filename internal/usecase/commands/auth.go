package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pestdesk/internal/domain/user"
	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/errs"
	"pestdesk/internal/pkg/jwt"
	"pestdesk/internal/pkg/password"
	"pestdesk/internal/usecase/queries"
	"pestdesk/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrSessionRevoked       = errs.New("session revoked")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	sessions   SessionStore
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, sessions SessionStore) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, emailVO.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(ctx, view.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		// Login already succeeded; the timestamp is informational.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	ok, err := a.sessions.Validate(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if !ok {
		return nil, ErrSessionRevoked
	}

	// Confirm the account still exists before re-issuing.
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(ctx, view.ID, role)
}

func (a *authCommandsImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	return a.sessions.Delete(ctx, userID)
}

// issueTokens generates a fresh pair and records the refresh token, rotating
// out any previously issued one for the user.
func (a *authCommandsImpl) issueTokens(ctx context.Context, userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.sessions.Save(ctx, userID, refreshToken, a.jwtService.RefreshTokenDuration()); err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
