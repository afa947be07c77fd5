package shared

import (
	"context"
	"time"

	"pestdesk/internal/domain/appointment"
	"pestdesk/internal/domain/chat"
	"pestdesk/internal/domain/customer"
	"pestdesk/internal/domain/review"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction with retry on
	// transient serialization/deadlock failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable runs fn at serializable isolation. Used for
	// appointment writes so the availability re-check and the insert/update
	// act on the same snapshot; conflicting bookings fail with a
	// serialization error and are retried against fresh data.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write-side repositories bound to one transaction.
type Tx interface {
	Appointments() AppointmentRepository
	Customers() CustomerRepository
	Reviews() ReviewRepository
	Messages() MessageRepository
	Users() UserRepository
}

type AppointmentRepository interface {
	Create(ctx context.Context, apt *appointment.Appointment) error
	Update(ctx context.Context, apt *appointment.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	// ListByDay returns every appointment starting in [dayStart, dayEnd),
	// any status. Called inside the write transaction immediately before
	// persisting so the overlap check never trusts a client-side snapshot.
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*appointment.Appointment, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	Update(ctx context.Context, r *review.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *chat.Message) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
