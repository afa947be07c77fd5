package appointment

import (
	"time"

	"pestdesk/internal/domain/schedule"

	"github.com/google/uuid"
)

// Appointment is a scheduled visit to a customer site. Effective duration is
// fixed at schedule.AppointmentDuration for occupancy and overlap purposes,
// regardless of status; only the start instant is stored.
type Appointment struct {
	id          uuid.UUID
	customerID  uuid.UUID
	start       time.Time
	status      Status
	serviceType ServiceType
	notes       Notes
	location    Location
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAppointment(
	customerID uuid.UUID,
	start time.Time,
	serviceType ServiceType,
	notes Notes,
	location Location,
) (*Appointment, error) {
	if customerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	if start.IsZero() {
		return nil, ErrZeroStart
	}
	if location.IsZero() {
		return nil, ErrLocationRequired
	}

	return &Appointment{
		id:          uuid.New(),
		customerID:  customerID,
		start:       start.Truncate(time.Minute),
		status:      StatusPending,
		serviceType: serviceType,
		notes:       notes,
		location:    location,
	}, nil
}

func ReconstructAppointment(
	id, customerID uuid.UUID,
	start time.Time,
	status Status,
	serviceType ServiceType,
	notes Notes,
	location Location,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		customerID:  customerID,
		start:       start,
		status:      status,
		serviceType: serviceType,
		notes:       notes,
		location:    location,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ChangeStatus applies a status transition. The data model deliberately
// allows free transitions; the UI only offers forward ones.
func (a *Appointment) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	a.status = s
	return nil
}

// Reschedule moves the appointment to a new start instant. Orthogonal to
// status: rescheduling never changes it.
func (a *Appointment) Reschedule(newStart time.Time) error {
	if newStart.IsZero() {
		return ErrZeroStart
	}
	a.start = newStart.Truncate(time.Minute)
	return nil
}

// End returns the exclusive end of the appointment's effective interval.
func (a *Appointment) End() time.Time {
	return a.start.Add(schedule.AppointmentDuration)
}

// ScheduleEntry projects the appointment into the availability engine's
// input form.
func (a *Appointment) ScheduleEntry() schedule.Entry {
	return schedule.Entry{
		ID:        a.id,
		Start:     a.start,
		Cancelled: a.status.IsCancelled(),
	}
}

func (a *Appointment) ID() uuid.UUID            { return a.id }
func (a *Appointment) CustomerID() uuid.UUID    { return a.customerID }
func (a *Appointment) Start() time.Time         { return a.start }
func (a *Appointment) Status() Status           { return a.status }
func (a *Appointment) ServiceType() ServiceType { return a.serviceType }
func (a *Appointment) Notes() Notes             { return a.notes }
func (a *Appointment) Location() Location       { return a.location }
func (a *Appointment) CreatedAt() time.Time     { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time     { return a.updatedAt }
