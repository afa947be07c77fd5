package request

import (
	"pestdesk/internal/usecase/commands"
)

type CreateCustomerRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	ServicePlan string   `json:"service_plan" binding:"required,oneof=monthly quarterly one_time"`
	Tags        []string `json:"tags"`
}

func (r CreateCustomerRequest) ToCommand() commands.CreateCustomerRequest {
	return commands.CreateCustomerRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		ServicePlan: r.ServicePlan,
		Tags:        r.Tags,
	}
}

type UpdateCustomerRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	ServicePlan string   `json:"service_plan" binding:"required,oneof=monthly quarterly one_time"`
	Tags        []string `json:"tags"`
}

func (r UpdateCustomerRequest) ToCommand() commands.UpdateCustomerRequest {
	return commands.UpdateCustomerRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		ServicePlan: r.ServicePlan,
		Tags:        r.Tags,
	}
}
