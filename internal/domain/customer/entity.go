package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a service account holder. The availability engine only ever
// reads the id and location; the rest is back-office record keeping.
type Customer struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     Phone
	address   Address
	lat       *float64
	lng       *float64
	plan      ServicePlan
	tags      Tags
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name string, email Email, phone Phone, address Address, plan ServicePlan, tags Tags) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !plan.IsValid() {
		return nil, ErrInvalidServicePlan
	}

	return &Customer{
		id:      uuid.New(),
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		plan:    plan,
		tags:    tags,
	}, nil
}

func ReconstructCustomer(
	id uuid.UUID,
	name string,
	email Email,
	phone Phone,
	address Address,
	lat, lng *float64,
	plan ServicePlan,
	tags Tags,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		lat:       lat,
		lng:       lng,
		plan:      plan,
		tags:      tags,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SetCoordinates records the geocoded location of the customer's address.
func (c *Customer) SetCoordinates(lat, lng float64) {
	c.lat = &lat
	c.lng = &lng
}

// ChangeAddress replaces the address and invalidates stale coordinates until
// the new address is geocoded.
func (c *Customer) ChangeAddress(a Address) {
	c.address = a
	c.lat = nil
	c.lng = nil
}

// HasCoordinates reports whether a geocoded location is available for use as
// a default appointment location.
func (c *Customer) HasCoordinates() bool {
	return c.lat != nil && c.lng != nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) Phone() Phone         { return c.phone }
func (c *Customer) Address() Address     { return c.address }
func (c *Customer) Lat() *float64        { return c.lat }
func (c *Customer) Lng() *float64        { return c.lng }
func (c *Customer) Plan() ServicePlan    { return c.plan }
func (c *Customer) Tags() Tags           { return c.tags }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
