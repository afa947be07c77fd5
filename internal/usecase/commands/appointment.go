package commands

import (
	"context"
	"time"

	domappointment "pestdesk/internal/domain/appointment"
	"pestdesk/internal/domain/schedule"
	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/errs"
	"pestdesk/internal/usecase/queries"
	"pestdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrAppointmentConflict = errs.New("slot no longer available")
	ErrGeocodeFailed       = errs.New("failed to geocode customer address")
)

type CreateAppointmentRequest struct {
	CustomerID  uuid.UUID
	StartTime   time.Time
	ServiceType string
	Notes       string
	Latitude    *float64
	Longitude   *float64
}

type AppointmentCommands interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (uuid.UUID, error)
	Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Cancel(ctx context.Context, id uuid.UUID) error
}

type appointmentUseCaseImpl struct {
	uow       shared.UnitOfWork
	customers queries.CustomerViewRepo
	geocoder  Geocoder
}

func NewAppointmentUseCase(uow shared.UnitOfWork, customers queries.CustomerViewRepo, geocoder Geocoder) AppointmentCommands {
	return &appointmentUseCaseImpl{
		uow:       uow,
		customers: customers,
		geocoder:  geocoder,
	}
}

func (uc *appointmentUseCaseImpl) Create(ctx context.Context, req CreateAppointmentRequest) (uuid.UUID, error) {
	serviceType, err := domappointment.NewServiceType(req.ServiceType)
	if err != nil {
		return uuid.Nil, err
	}
	notes, err := domappointment.NewNotes(req.Notes)
	if err != nil {
		return uuid.Nil, err
	}

	location, err := uc.resolveLocation(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}

	apt, err := domappointment.NewAppointment(req.CustomerID, req.StartTime, serviceType, notes, location)
	if err != nil {
		return uuid.Nil, err
	}

	// Serializable so the overlap check and the insert see one snapshot;
	// a concurrent booking of the same window forces a serialization
	// failure and the retry re-checks against the committed state.
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		conflict, txErr := uc.wouldConflict(ctx, tx, apt.Start(), uuid.Nil)
		if txErr != nil {
			return txErr
		}
		if conflict {
			return ErrAppointmentConflict
		}

		if txErr := tx.Appointments().Create(ctx, apt); txErr != nil {
			if infra.IsKind(txErr, infra.KindForeignKeyViolated) {
				return ErrCustomerNotFound
			}
			return txErr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return apt.ID(), nil
}

func (uc *appointmentUseCaseImpl) Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) error {
	return uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, err := tx.Appointments().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}

		conflict, err := uc.wouldConflict(ctx, tx, newStart, apt.ID())
		if err != nil {
			return err
		}
		if conflict {
			return ErrAppointmentConflict
		}

		if err := apt.Reschedule(newStart); err != nil {
			return err
		}
		return tx.Appointments().Update(ctx, apt)
	})
}

func (uc *appointmentUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	newStatus, err := domappointment.NewStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, txErr := tx.Appointments().FindByID(ctx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return txErr
		}
		if txErr := apt.ChangeStatus(newStatus); txErr != nil {
			return txErr
		}
		return tx.Appointments().Update(ctx, apt)
	})
}

func (uc *appointmentUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.UpdateStatus(ctx, id, domappointment.StatusCancelled.String())
}

// wouldConflict re-fetches the candidate day's appointments inside the
// caller's transaction and runs the overlap rule, ignoring the appointment
// being moved when exclude is set.
func (uc *appointmentUseCaseImpl) wouldConflict(ctx context.Context, tx shared.Tx, start time.Time, exclude uuid.UUID) (bool, error) {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	existing, err := tx.Appointments().ListByDay(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return false, err
	}

	entries := make([]schedule.Entry, 0, len(existing))
	for _, other := range existing {
		if exclude != uuid.Nil && other.ID() == exclude {
			continue
		}
		entries = append(entries, other.ScheduleEntry())
	}
	return schedule.WouldOverlap(start, entries), nil
}

func (uc *appointmentUseCaseImpl) resolveLocation(ctx context.Context, req CreateAppointmentRequest) (domappointment.Location, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return domappointment.NewLocation(*req.Latitude, *req.Longitude)
	}

	cust, err := uc.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return domappointment.Location{}, ErrCustomerNotFound
		}
		return domappointment.Location{}, err
	}
	if cust.Latitude != nil && cust.Longitude != nil {
		return domappointment.NewLocation(*cust.Latitude, *cust.Longitude)
	}

	lat, lng, err := uc.geocoder.Geocode(ctx, cust.Address)
	if err != nil {
		return domappointment.Location{}, errs.Mark(err, ErrGeocodeFailed)
	}
	return domappointment.NewLocation(lat, lng)
}
