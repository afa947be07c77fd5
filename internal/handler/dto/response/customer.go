package response

import (
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	ServicePlan string    `json:"servicePlan"`
	Tags        []string  `json:"tags"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCustomerView(rm *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Email:       rm.Email,
		Phone:       rm.Phone,
		Address:     rm.Address,
		ServicePlan: rm.ServicePlan,
		Tags:        rm.Tags,
		Latitude:    rm.Latitude,
		Longitude:   rm.Longitude,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromCustomerViews(rms []*queries.CustomerView) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromCustomerView(rm))
	}
	return out
}
