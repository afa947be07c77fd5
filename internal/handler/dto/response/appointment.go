package response

import (
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	ServiceType  string    `json:"serviceType"`
	Notes        *string   `json:"notes,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromAppointmentView(rm *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           rm.ID,
		CustomerID:   rm.CustomerID,
		CustomerName: rm.CustomerName,
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		Status:       rm.Status,
		ServiceType:  rm.ServiceType,
		Notes:        rm.Notes,
		Latitude:     rm.Latitude,
		Longitude:    rm.Longitude,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromAppointmentViews(rms []*queries.AppointmentView) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromAppointmentView(rm))
	}
	return out
}

type SlotResponse struct {
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Available     bool       `json:"available"`
	AppointmentID *uuid.UUID `json:"appointmentId,omitempty"`
}

type HourBlockResponse struct {
	Hour  int            `json:"hour"`
	Slots []SlotResponse `json:"slots"`
}

type GridResponse struct {
	Date  string              `json:"date"`
	Hours []HourBlockResponse `json:"hours"`
}

func FromGridView(rm *queries.GridView) *GridResponse {
	resp := &GridResponse{
		Date:  rm.Date,
		Hours: make([]HourBlockResponse, 0, len(rm.Hours)),
	}
	for _, block := range rm.Hours {
		hour := HourBlockResponse{
			Hour:  block.Hour,
			Slots: make([]SlotResponse, 0, len(block.Slots)),
		}
		for _, slot := range block.Slots {
			hour.Slots = append(hour.Slots, SlotResponse{
				Start:         slot.Start,
				End:           slot.End,
				Available:     slot.Available,
				AppointmentID: slot.AppointmentID,
			})
		}
		resp.Hours = append(resp.Hours, hour)
	}
	return resp
}

type OverlapResponse struct {
	StartTime time.Time `json:"startTime"`
	Overlaps  bool      `json:"overlaps"`
}
