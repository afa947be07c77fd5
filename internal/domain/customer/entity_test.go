//go:build unit

package customer_test

import (
	"testing"

	"pestdesk/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParts(t *testing.T) (customer.Email, customer.Phone, customer.Address, customer.Tags) {
	t.Helper()
	email, err := customer.NewEmail("jane@example.com")
	require.NoError(t, err)
	phone, err := customer.NewPhone("+1 (555) 123-4567")
	require.NoError(t, err)
	addr, err := customer.NewAddress("12 Elm St, Springfield")
	require.NoError(t, err)
	tags, err := customer.NewTags([]string{"ants", "vip"})
	require.NoError(t, err)
	return email, phone, addr, tags
}

func TestNewCustomer(t *testing.T) {
	email, phone, addr, tags := validParts(t)

	c, err := customer.NewCustomer("Jane Doe", email, phone, addr, customer.PlanQuarterly, tags)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", c.Name())
	assert.Equal(t, []string{"ants", "vip"}, c.Tags().Values())
	assert.False(t, c.HasCoordinates())

	_, err = customer.NewCustomer("", email, phone, addr, customer.PlanQuarterly, tags)
	assert.ErrorIs(t, err, customer.ErrEmptyName)

	_, err = customer.NewCustomer("Jane", email, phone, addr, customer.ServicePlan("weekly"), tags)
	assert.ErrorIs(t, err, customer.ErrInvalidServicePlan)
}

func TestCoordinatesLifecycle(t *testing.T) {
	email, phone, addr, tags := validParts(t)
	c, err := customer.NewCustomer("Jane Doe", email, phone, addr, customer.PlanMonthly, tags)
	require.NoError(t, err)

	c.SetCoordinates(37.77, -122.41)
	require.True(t, c.HasCoordinates())
	assert.Equal(t, 37.77, *c.Lat())

	// Changing the address invalidates coordinates until re-geocoded.
	newAddr, err := customer.NewAddress("99 Oak Ave")
	require.NoError(t, err)
	c.ChangeAddress(newAddr)
	assert.False(t, c.HasCoordinates())
	assert.Equal(t, "99 Oak Ave", c.Address().Value())
}

func TestValueObjects(t *testing.T) {
	_, err := customer.NewEmail("not-an-email")
	assert.ErrorIs(t, err, customer.ErrInvalidEmail)

	_, err = customer.NewPhone("abc")
	assert.ErrorIs(t, err, customer.ErrInvalidPhone)

	_, err = customer.NewAddress("   ")
	assert.ErrorIs(t, err, customer.ErrEmptyAddress)

	_, err = customer.NewTags([]string{"ok", " "})
	assert.ErrorIs(t, err, customer.ErrEmptyTag)

	many := make([]string, customer.MaxTags+1)
	for i := range many {
		many[i] = "t"
	}
	_, err = customer.NewTags(many)
	assert.ErrorIs(t, err, customer.ErrTooManyTags)
}
