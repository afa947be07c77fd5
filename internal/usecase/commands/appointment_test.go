//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domappointment "pestdesk/internal/domain/appointment"
	"pestdesk/internal/infra"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"
	"pestdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

// fakeUoW runs the transactional closure directly against in-memory
// repositories; isolation is irrelevant for these tests.
type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	appointments *fakeAppointmentRepo
	customers    *fakeCustomerRepo
	messages     *fakeMessageRepo
	users        *fakeUserRepo
}

func (t *fakeTx) Appointments() shared.AppointmentRepository { return t.appointments }
func (t *fakeTx) Customers() shared.CustomerRepository       { return t.customers }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return nil }
func (t *fakeTx) Messages() shared.MessageRepository         { return t.messages }
func (t *fakeTx) Users() shared.UserRepository               { return t.users }

type fakeAppointmentRepo struct {
	byID map[uuid.UUID]*domappointment.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[uuid.UUID]*domappointment.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, apt *domappointment.Appointment) error {
	r.byID[apt.ID()] = apt
	return nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, apt *domappointment.Appointment) error {
	r.byID[apt.ID()] = apt
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*domappointment.Appointment, error) {
	apt, ok := r.byID[id]
	if !ok {
		return nil, notFoundErr()
	}
	return apt, nil
}

func (r *fakeAppointmentRepo) ListByDay(_ context.Context, dayStart, dayEnd time.Time) ([]*domappointment.Appointment, error) {
	var out []*domappointment.Appointment
	for _, apt := range r.byID {
		if !apt.Start().Before(dayStart) && apt.Start().Before(dayEnd) {
			out = append(out, apt)
		}
	}
	return out, nil
}

type fakeCustomerViews struct {
	byID map[uuid.UUID]*queries.CustomerView
}

func (f *fakeCustomerViews) FindByID(_ context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, notFoundErr()
	}
	return v, nil
}

func (f *fakeCustomerViews) Find(_ context.Context, _ queries.CustomerFilter) ([]*queries.CustomerView, error) {
	return nil, nil
}

type fakeGeocoder struct {
	lat, lng float64
	err      error
	calls    int
}

func (g *fakeGeocoder) Geocode(_ context.Context, _ string) (float64, float64, error) {
	g.calls++
	return g.lat, g.lng, g.err
}

func newAppointmentFixture() (*fakeUoW, *fakeCustomerViews, *fakeGeocoder, commands.AppointmentCommands) {
	uow := &fakeUoW{tx: &fakeTx{appointments: newFakeAppointmentRepo()}}
	customers := &fakeCustomerViews{byID: make(map[uuid.UUID]*queries.CustomerView)}
	geocoder := &fakeGeocoder{lat: 40.7128, lng: -74.0060}
	return uow, customers, geocoder, commands.NewAppointmentUseCase(uow, customers, geocoder)
}

func dayAt(hour, minute int) time.Time {
	return time.Date(2026, 9, 15, hour, minute, 0, 0, time.UTC)
}

func createReq(customerID uuid.UUID, start time.Time) commands.CreateAppointmentRequest {
	lat, lng := 40.7128, -74.0060
	return commands.CreateAppointmentRequest{
		CustomerID:  customerID,
		StartTime:   start,
		ServiceType: "inspection",
		Latitude:    &lat,
		Longitude:   &lng,
	}
}

func TestAppointmentCreate(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("success: books a free slot", func(t *testing.T) {
		uow, _, _, uc := newAppointmentFixture()

		id, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Len(t, uow.tx.appointments.byID, 1)
	})

	t.Run("conflict: exact same start", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		_, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)

		_, err = uc.Create(ctx, createReq(uuid.New(), dayAt(10, 0)))
		assert.ErrorIs(t, err, commands.ErrAppointmentConflict)
	})

	t.Run("conflict: partial intersection with an existing hour", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		_, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)

		// 10:45 intersects the 10:00-11:00 visit
		_, err = uc.Create(ctx, createReq(uuid.New(), dayAt(10, 45)))
		assert.ErrorIs(t, err, commands.ErrAppointmentConflict)
	})

	t.Run("no conflict: back to back bookings", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		_, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)

		_, err = uc.Create(ctx, createReq(uuid.New(), dayAt(11, 0)))
		assert.NoError(t, err)
	})

	t.Run("no conflict: cancelled appointment frees its window", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		id, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)
		require.NoError(t, uc.Cancel(ctx, id))

		_, err = uc.Create(ctx, createReq(uuid.New(), dayAt(10, 0)))
		assert.NoError(t, err)
	})

	t.Run("location: falls back to customer coordinates", func(t *testing.T) {
		_, customers, geocoder, uc := newAppointmentFixture()
		lat, lng := 41.0, -73.0
		customers.byID[customerID] = &queries.CustomerView{
			ID: customerID, Address: "12 Main St", Latitude: &lat, Longitude: &lng,
		}

		req := createReq(customerID, dayAt(9, 0))
		req.Latitude = nil
		req.Longitude = nil

		_, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Zero(t, geocoder.calls, "stored coordinates should not trigger geocoding")
	})

	t.Run("location: geocodes the address when no coordinates exist", func(t *testing.T) {
		_, customers, geocoder, uc := newAppointmentFixture()
		customers.byID[customerID] = &queries.CustomerView{ID: customerID, Address: "12 Main St"}

		req := createReq(customerID, dayAt(9, 0))
		req.Latitude = nil
		req.Longitude = nil

		_, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 1, geocoder.calls)
	})

	t.Run("location: unknown customer", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		req := createReq(uuid.New(), dayAt(9, 0))
		req.Latitude = nil
		req.Longitude = nil

		_, err := uc.Create(ctx, req)
		assert.ErrorIs(t, err, commands.ErrCustomerNotFound)
	})

	t.Run("location: geocoder failure surfaces as ErrGeocodeFailed", func(t *testing.T) {
		_, customers, geocoder, uc := newAppointmentFixture()
		customers.byID[customerID] = &queries.CustomerView{ID: customerID, Address: "12 Main St"}
		geocoder.err = assert.AnError

		req := createReq(customerID, dayAt(9, 0))
		req.Latitude = nil
		req.Longitude = nil

		_, err := uc.Create(ctx, req)
		assert.ErrorIs(t, err, commands.ErrGeocodeFailed)
	})
}

func TestAppointmentReschedule(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("success: moves to a free window", func(t *testing.T) {
		uow, _, _, uc := newAppointmentFixture()

		id, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)

		require.NoError(t, uc.Reschedule(ctx, id, dayAt(14, 0)))
		moved := uow.tx.appointments.byID[id]
		assert.Equal(t, dayAt(14, 0), moved.Start())
	})

	t.Run("success: shifting within its own window is not a conflict", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		id, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)

		assert.NoError(t, uc.Reschedule(ctx, id, dayAt(10, 15)))
	})

	t.Run("conflict: target window is occupied by another appointment", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		id, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)
		_, err = uc.Create(ctx, createReq(uuid.New(), dayAt(12, 0)))
		require.NoError(t, err)

		err = uc.Reschedule(ctx, id, dayAt(12, 30))
		assert.ErrorIs(t, err, commands.ErrAppointmentConflict)
	})

	t.Run("error: unknown appointment", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		err := uc.Reschedule(ctx, uuid.New(), dayAt(10, 0))
		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})
}

func TestAppointmentUpdateStatus(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("success: confirm then complete", func(t *testing.T) {
		uow, _, _, uc := newAppointmentFixture()

		id, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)

		require.NoError(t, uc.UpdateStatus(ctx, id, "confirmed"))
		require.NoError(t, uc.UpdateStatus(ctx, id, "completed"))
		assert.Equal(t, "completed", uow.tx.appointments.byID[id].Status().String())
	})

	t.Run("error: unknown status value", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		id, err := uc.Create(ctx, createReq(customerID, dayAt(10, 0)))
		require.NoError(t, err)

		assert.Error(t, uc.UpdateStatus(ctx, id, "postponed"))
	})

	t.Run("error: unknown appointment", func(t *testing.T) {
		_, _, _, uc := newAppointmentFixture()

		assert.ErrorIs(t, uc.UpdateStatus(ctx, uuid.New(), "confirmed"), commands.ErrAppointmentNotFound)
	})
}
