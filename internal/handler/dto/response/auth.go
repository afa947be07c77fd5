package response

import (
	"pestdesk/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

func NewLoginResponse(accessToken string, user *queries.AuthorizedUserView) *LoginResponse {
	return &LoginResponse{
		AccessToken: accessToken,
		User:        FromUserView(user),
	}
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
