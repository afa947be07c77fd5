package queries

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentView represents read-optimized appointment data
type AppointmentView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	ServiceType  string    `json:"service_type"`
	Notes        *string   `json:"notes,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SlotView is one 15-minute cell of the day grid
type SlotView struct {
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Available     bool       `json:"available"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
}

type HourBlockView struct {
	Hour  int        `json:"hour"`
	Slots []SlotView `json:"slots"`
}

type GridView struct {
	Date  string          `json:"date"`
	Hours []HourBlockView `json:"hours"`
}

// CustomerView represents read-optimized customer data
type CustomerView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	ServicePlan string    `json:"service_plan"`
	Tags        []string  `json:"tags"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewView represents read-optimized review data with moderation state
type ReviewView struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	Rating       int32      `json:"rating"`
	Comment      string     `json:"comment"`
	Status       string     `json:"status"`
	ModeratedBy  *uuid.UUID `json:"moderated_by,omitempty"`
	ModeratedAt  *time.Time `json:"moderated_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MessageView represents one persisted chat message
type MessageView struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Sender     string    `json:"sender"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
}

// RouteStopView is one visit on a technician's day route
type RouteStopView struct {
	Order         int       `json:"order"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	StartTime     time.Time `json:"start_time"`
	ServiceType   string    `json:"service_type"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
}

type RouteView struct {
	Date  string          `json:"date"`
	Stops []RouteStopView `json:"stops"`
}

// AuthorizedUserView represents read-optimized staff user data with role info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
