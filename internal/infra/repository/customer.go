package repository

import (
	"context"
	"errors"
	"time"

	domcustomer "pestdesk/internal/domain/customer"
	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

const insertCustomer = `
INSERT INTO customers (id, name, email, phone, address, latitude, longitude, service_plan, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *CustomerRepository) Create(ctx context.Context, c *domcustomer.Customer) error {
	_, err := r.db.Exec(ctx, insertCustomer,
		c.ID(),
		c.Name(),
		c.Email().Value(),
		c.Phone().Value(),
		c.Address().Value(),
		c.Lat(),
		c.Lng(),
		c.Plan().String(),
		c.Tags().Values(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

const updateCustomer = `
UPDATE customers
SET name = $2, email = $3, phone = $4, address = $5,
    latitude = $6, longitude = $7, service_plan = $8, tags = $9, updated_at = now()
WHERE id = $1`

func (r *CustomerRepository) Update(ctx context.Context, c *domcustomer.Customer) error {
	tag, err := r.db.Exec(ctx, updateCustomer,
		c.ID(),
		c.Name(),
		c.Email().Value(),
		c.Phone().Value(),
		c.Address().Value(),
		c.Lat(),
		c.Lng(),
		c.Plan().String(),
		c.Tags().Values(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectCustomerByID = `
SELECT id, name, email, phone, address, latitude, longitude, service_plan, tags, created_at, updated_at
FROM customers
WHERE id = $1`

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domcustomer.Customer, error) {
	var (
		custID               uuid.UUID
		name                 string
		emailStr, phoneStr   string
		addressStr, planStr  string
		lat, lng             *float64
		tags                 []string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, selectCustomerByID, id).Scan(
		&custID, &name, &emailStr, &phoneStr, &addressStr, &lat, &lng, &planStr, &tags, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	email, err := domcustomer.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid customer email in store", err)
	}
	phone, err := domcustomer.NewPhone(phoneStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid customer phone in store", err)
	}
	address, err := domcustomer.NewAddress(addressStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid customer address in store", err)
	}
	plan, err := domcustomer.NewServicePlan(planStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid customer service plan in store", err)
	}
	tagVO, err := domcustomer.NewTags(tags)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid customer tags in store", err)
	}

	return domcustomer.ReconstructCustomer(custID, name, email, phone, address, lat, lng, plan, tagVO, createdAt, updatedAt), nil
}
