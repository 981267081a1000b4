// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

import (
	"context"
	"log/slog"

	"github.com/taibuivan/persona/internal/platform/validate"
	"github.com/taibuivan/persona/pkg/pointer"
)

// Input carries the writable fields of an address. Nil or blank optional
// fields are stored as NULL on create and keep their value on update.
type Input struct {
	PersonalID  int64
	AddressName string
	Address     string
	City        *string
	Province    *string
	Country     *string
}

func (input *Input) normalize() {
	input.AddressName = validate.Text(input.AddressName)
	input.Address = validate.Text(input.Address)
	input.City = pointer.NonBlank(input.City)
	input.Province = pointer.NonBlank(input.Province)
	input.Country = pointer.NonBlank(input.Country)
}

// validate checks the normalized input. personalRequired is false on update,
// where a zero PersonalID keeps the current profile.
func (input *Input) validate(personalRequired bool) error {
	validator := &validate.Validator{}

	validator.Required(FieldAddressName, input.AddressName).MaxLen(FieldAddressName, input.AddressName, MaxFieldLength)
	validator.Required(FieldAddress, input.Address).MaxLen(FieldAddress, input.Address, MaxFieldLength)

	if personalRequired || input.PersonalID != 0 {
		validator.Positive(FieldPersonalID, input.PersonalID)
	}

	validator.MaxLen(FieldCity, pointer.Val(input.City), MaxFieldLength)
	validator.MaxLen(FieldProvince, pointer.Val(input.Province), MaxFieldLength)
	validator.MaxLen(FieldCountry, pointer.Val(input.Country), MaxFieldLength)

	return validator.Err()
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context, limit, offset int) ([]*Address, int, error) {
	return service.repo.List(context, limit, offset)
}

// ListByPersonal returns the addresses of one profile, possibly none.
func (service *Service) ListByPersonal(context context.Context, personalID int64) ([]*Address, error) {
	return service.repo.ListByPersonal(context, personalID)
}

func (service *Service) Get(context context.Context, id int64) (*Address, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Create(context context.Context, input Input) (*Address, error) {
	input.normalize()
	if err := input.validate(true); err != nil {
		return nil, err
	}

	address := &Address{
		PersonalID:  input.PersonalID,
		AddressName: input.AddressName,
		Address:     input.Address,
		City:        input.City,
		Province:    input.Province,
		Country:     input.Country,
	}

	if err := service.repo.Create(context, address); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "address_created",
		slog.Int64("address_id", address.ID),
		slog.Int64("personal_id", address.PersonalID),
	)
	return address, nil
}

/*
Update overwrites the required fields and merges the optional ones.

Returns:
  - *Address: The stored address after the update
  - error: apperr.NotFound("Address"), a validation error, or a 400 when the
    new PersonalID references no profile
*/
func (service *Service) Update(context context.Context, id int64, input Input) (*Address, error) {
	input.normalize()
	if err := input.validate(false); err != nil {
		return nil, err
	}

	address, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	if input.PersonalID != 0 {
		address.PersonalID = input.PersonalID
	}
	address.AddressName = input.AddressName
	address.Address = input.Address
	address.City = pointer.Or(input.City, address.City)
	address.Province = pointer.Or(input.Province, address.Province)
	address.Country = pointer.Or(input.Country, address.Country)

	if err := service.repo.Update(context, address); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "address_updated", slog.Int64("address_id", id))
	return address, nil
}

// Delete removes an address and returns it as it was.
func (service *Service) Delete(context context.Context, id int64) (*Address, error) {
	address, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return nil, err
	}

	service.logger.WarnContext(context, "address_deleted", slog.Int64("address_id", id))
	return address, nil
}
