//go:build unit || e2e

package builder

import (
	"time"

	"pestdesk/internal/domain/customer"
	reqdto "pestdesk/internal/handler/dto/request"
	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	ServicePlan string
	Tags        []string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:        "Acme Bakery",
		Email:       "contact@acmebakery.example.com",
		Phone:       "+15550100200",
		Address:     "12 Main St, Springfield",
		ServicePlan: "monthly",
		Tags:        []string{"commercial", "rodents"},
	}
}

func (c *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	c.Email = email
	return c
}

func (c *CustomerBuilder) WithServicePlan(plan string) *CustomerBuilder {
	c.ServicePlan = plan
	return c
}

func (c *CustomerBuilder) BuildDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		ServicePlan: c.ServicePlan,
		Tags:        c.Tags,
	}
}

func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	email, err := customer.NewEmail(c.Email)
	if err != nil {
		return nil, err
	}
	phone, err := customer.NewPhone(c.Phone)
	if err != nil {
		return nil, err
	}
	address, err := customer.NewAddress(c.Address)
	if err != nil {
		return nil, err
	}
	plan, err := customer.NewServicePlan(c.ServicePlan)
	if err != nil {
		return nil, err
	}
	tags, err := customer.NewTags(c.Tags)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(c.Name, email, phone, address, plan, tags)
}

func (c *CustomerBuilder) BuildReadModel() *queries.CustomerView {
	now := time.Now()
	return &queries.CustomerView{
		ID:          uuid.New(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		ServicePlan: c.ServicePlan,
		Tags:        c.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
