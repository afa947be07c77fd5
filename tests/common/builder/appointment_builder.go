//go:build unit || e2e

package builder

import (
	"time"

	"pestdesk/internal/domain/schedule"
	reqdto "pestdesk/internal/handler/dto/request"
	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	CustomerID   uuid.UUID
	CustomerName string
	StartTime    time.Time
	Status       string
	ServiceType  string
	Latitude     float64
	Longitude    float64
}

func NewAppointmentBuilder() *AppointmentBuilder {
	day := time.Now().AddDate(0, 0, 1)
	start := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.Local)
	return &AppointmentBuilder{
		CustomerID:   uuid.New(),
		CustomerName: "Acme Bakery",
		StartTime:    start,
		Status:       "pending",
		ServiceType:  "inspection",
		Latitude:     40.7128,
		Longitude:    -74.0060,
	}
}

func (a *AppointmentBuilder) WithCustomerID(id uuid.UUID) *AppointmentBuilder {
	a.CustomerID = id
	return a
}

func (a *AppointmentBuilder) WithStartTime(t time.Time) *AppointmentBuilder {
	a.StartTime = t
	return a
}

func (a *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) BuildDTO() reqdto.CreateAppointmentRequest {
	lat := a.Latitude
	lng := a.Longitude
	return reqdto.CreateAppointmentRequest{
		CustomerID:  a.CustomerID,
		StartTime:   a.StartTime,
		ServiceType: a.ServiceType,
		Latitude:    &lat,
		Longitude:   &lng,
	}
}

func (a *AppointmentBuilder) BuildReadModel() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:           uuid.New(),
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		StartTime:    a.StartTime,
		EndTime:      a.StartTime.Add(schedule.AppointmentDuration),
		Status:       a.Status,
		ServiceType:  a.ServiceType,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
