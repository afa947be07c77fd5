//go:build unit || e2e

package builder

import (
	"pestdesk/internal/domain/user"
	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "staff@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test Operator",
		Role:         "operator",
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, u.Name, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:    uuid.New(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
