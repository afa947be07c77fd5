package response

import (
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func FromUserView(rm *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:          rm.ID,
		Email:       rm.Email,
		Name:        rm.Name,
		Role:        rm.Role,
		LastLoginAt: rm.LastLoginAt,
	}
}

func FromUserViews(rms []*queries.AuthorizedUserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromUserView(rm))
	}
	return out
}
