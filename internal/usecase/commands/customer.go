package commands

import (
	"context"
	"log/slog"

	domcustomer "pestdesk/internal/domain/customer"
	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/errs"
	"pestdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateCustomerEmail = errs.New("customer email already registered")

type CreateCustomerRequest struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	ServicePlan string
	Tags        []string
}

type UpdateCustomerRequest struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	ServicePlan string
	Tags        []string
}

type CustomerCommands interface {
	Create(ctx context.Context, req CreateCustomerRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) error
}

type customerUseCaseImpl struct {
	uow      shared.UnitOfWork
	geocoder Geocoder
}

func NewCustomerUseCase(uow shared.UnitOfWork, geocoder Geocoder) CustomerCommands {
	return &customerUseCaseImpl{
		uow:      uow,
		geocoder: geocoder,
	}
}

func (uc *customerUseCaseImpl) Create(ctx context.Context, req CreateCustomerRequest) (uuid.UUID, error) {
	email, phone, address, plan, tags, err := customerValues(req.Email, req.Phone, req.Address, req.ServicePlan, req.Tags)
	if err != nil {
		return uuid.Nil, err
	}

	cust, err := domcustomer.NewCustomer(req.Name, email, phone, address, plan, tags)
	if err != nil {
		return uuid.Nil, err
	}

	// Geocoding is best effort; a customer without coordinates simply has
	// no default appointment location yet.
	if lat, lng, gerr := uc.geocoder.Geocode(ctx, address.Value()); gerr != nil {
		slog.Warn("geocoding failed for new customer", "address", address.Value(), "error", gerr.Error())
	} else {
		cust.SetCoordinates(lat, lng)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Customers().Create(ctx, cust); txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrDuplicateCustomerEmail
			}
			return txErr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return cust.ID(), nil
}

func (uc *customerUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) error {
	email, phone, address, plan, tags, err := customerValues(req.Email, req.Phone, req.Address, req.ServicePlan, req.Tags)
	if err != nil {
		return err
	}

	// Geocode ahead of the transaction; network calls never run inside it.
	var lat, lng float64
	geocoded := false
	if glat, glng, gerr := uc.geocoder.Geocode(ctx, address.Value()); gerr != nil {
		slog.Warn("geocoding failed for updated address", "address", address.Value(), "error", gerr.Error())
	} else {
		lat, lng = glat, glng
		geocoded = true
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, txErr := tx.Customers().FindByID(ctx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return txErr
		}

		addressChanged := cust.Address().Value() != address.Value()
		updated := domcustomer.ReconstructCustomer(
			cust.ID(), req.Name, email, phone, cust.Address(),
			cust.Lat(), cust.Lng(), plan, tags,
			cust.CreatedAt(), cust.UpdatedAt(),
		)
		if addressChanged {
			updated.ChangeAddress(address)
			if geocoded {
				updated.SetCoordinates(lat, lng)
			}
		}

		if txErr := tx.Customers().Update(ctx, updated); txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrDuplicateCustomerEmail
			}
			return txErr
		}
		return nil
	})
}

func customerValues(emailStr, phoneStr, addressStr, planStr string, tagValues []string) (domcustomer.Email, domcustomer.Phone, domcustomer.Address, domcustomer.ServicePlan, domcustomer.Tags, error) {
	var zeroEmail domcustomer.Email
	var zeroPhone domcustomer.Phone
	var zeroAddress domcustomer.Address
	var zeroTags domcustomer.Tags

	email, err := domcustomer.NewEmail(emailStr)
	if err != nil {
		return zeroEmail, zeroPhone, zeroAddress, "", zeroTags, err
	}
	phone, err := domcustomer.NewPhone(phoneStr)
	if err != nil {
		return zeroEmail, zeroPhone, zeroAddress, "", zeroTags, err
	}
	address, err := domcustomer.NewAddress(addressStr)
	if err != nil {
		return zeroEmail, zeroPhone, zeroAddress, "", zeroTags, err
	}
	plan, err := domcustomer.NewServicePlan(planStr)
	if err != nil {
		return zeroEmail, zeroPhone, zeroAddress, "", zeroTags, err
	}
	tags, err := domcustomer.NewTags(tagValues)
	if err != nil {
		return zeroEmail, zeroPhone, zeroAddress, "", zeroTags, err
	}
	return email, phone, address, plan, tags, nil
}
