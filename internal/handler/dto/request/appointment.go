package request

import (
	"time"

	"pestdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	ServiceType string    `json:"service_type" binding:"required"`
	Notes       *string   `json:"notes,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	notes := ""
	if r.Notes != nil {
		notes = *r.Notes
	}
	return commands.CreateAppointmentRequest{
		CustomerID:  r.CustomerID,
		StartTime:   r.StartTime,
		ServiceType: r.ServiceType,
		Notes:       notes,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}

type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
