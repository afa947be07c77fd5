//go:build unit

package commands_test

import (
	"context"
	"testing"

	domcustomer "pestdesk/internal/domain/customer"
	"pestdesk/internal/infra"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	byID      map[uuid.UUID]*domcustomer.Customer
	createErr error
	updateErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[uuid.UUID]*domcustomer.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *domcustomer.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *domcustomer.Customer) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.byID[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*domcustomer.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
	}
	return c, nil
}

func createCustomerReq() commands.CreateCustomerRequest {
	return commands.CreateCustomerRequest{
		Name:        "Acme Bakery",
		Email:       "contact@acmebakery.com",
		Phone:       "+12125550100",
		Address:     "12 Flour St, New York, NY",
		ServicePlan: "monthly",
		Tags:        []string{"commercial", "rodents"},
	}
}

func newCustomerFixture() (*fakeCustomerRepo, *fakeGeocoder, commands.CustomerCommands) {
	repo := newFakeCustomerRepo()
	uow := &fakeUoW{tx: &fakeTx{customers: repo}}
	geocoder := &fakeGeocoder{lat: 40.7128, lng: -74.0060}
	return repo, geocoder, commands.NewCustomerUseCase(uow, geocoder)
}

func TestCustomerCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: geocodes the address and persists coordinates", func(t *testing.T) {
		repo, geocoder, uc := newCustomerFixture()

		id, err := uc.Create(ctx, createCustomerReq())
		require.NoError(t, err)

		stored := repo.byID[id]
		require.NotNil(t, stored)
		assert.Equal(t, "Acme Bakery", stored.Name())
		require.True(t, stored.HasCoordinates())
		assert.Equal(t, geocoder.lat, *stored.Lat())
		assert.Equal(t, geocoder.lng, *stored.Lng())
		assert.Equal(t, 1, geocoder.calls)
	})

	t.Run("success: geocoding failure does not block creation", func(t *testing.T) {
		repo, geocoder, uc := newCustomerFixture()
		geocoder.err = assert.AnError

		id, err := uc.Create(ctx, createCustomerReq())
		require.NoError(t, err)

		stored := repo.byID[id]
		require.NotNil(t, stored)
		assert.False(t, stored.HasCoordinates())
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		repo, _, uc := newCustomerFixture()
		repo.createErr = infra.WrapRepoErr("insert customers", &pgconn.PgError{Code: "23505"})

		_, err := uc.Create(ctx, createCustomerReq())
		assert.ErrorIs(t, err, commands.ErrDuplicateCustomerEmail)
	})

	t.Run("error: invalid email rejected before any side effect", func(t *testing.T) {
		repo, geocoder, uc := newCustomerFixture()

		req := createCustomerReq()
		req.Email = "not-an-email"
		_, err := uc.Create(ctx, req)

		assert.Error(t, err)
		assert.Empty(t, repo.byID)
		assert.Zero(t, geocoder.calls)
	})
}

func TestCustomerUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeCustomerRepo, uc commands.CustomerCommands) uuid.UUID {
		t.Helper()
		id, err := uc.Create(ctx, createCustomerReq())
		require.NoError(t, err)
		return id
	}

	t.Run("success: changed address is re-geocoded", func(t *testing.T) {
		repo, geocoder, uc := newCustomerFixture()
		id := seed(t, repo, uc)
		geocoder.lat, geocoder.lng = 40.6782, -73.9442

		req := commands.UpdateCustomerRequest(createCustomerReq())
		req.Address = "99 Bread Ave, Brooklyn, NY"
		require.NoError(t, uc.Update(ctx, id, req))

		stored := repo.byID[id]
		assert.Equal(t, "99 Bread Ave, Brooklyn, NY", stored.Address().Value())
		require.True(t, stored.HasCoordinates())
		assert.Equal(t, 40.6782, *stored.Lat())
	})

	t.Run("success: unchanged address keeps existing coordinates", func(t *testing.T) {
		repo, geocoder, uc := newCustomerFixture()
		id := seed(t, repo, uc)
		originalLat := *repo.byID[id].Lat()
		geocoder.lat = 1.0

		req := commands.UpdateCustomerRequest(createCustomerReq())
		req.Name = "Acme Bakery LLC"
		require.NoError(t, uc.Update(ctx, id, req))

		stored := repo.byID[id]
		assert.Equal(t, "Acme Bakery LLC", stored.Name())
		assert.Equal(t, originalLat, *stored.Lat())
	})

	t.Run("error: unknown customer", func(t *testing.T) {
		_, _, uc := newCustomerFixture()

		err := uc.Update(ctx, uuid.New(), commands.UpdateCustomerRequest(createCustomerReq()))
		assert.ErrorIs(t, err, commands.ErrCustomerNotFound)
	})
}

var _ shared.CustomerRepository = (*fakeCustomerRepo)(nil)
