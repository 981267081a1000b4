// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package personal

import (
	"context"
	"log/slog"

	"github.com/taibuivan/persona/internal/platform/validate"
)

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

func (service *Service) List(context context.Context, limit, offset int) ([]*Personal, int, error) {
	return service.repo.List(context, limit, offset)
}

// ListByUser returns every profile owned by userID, possibly none.
func (service *Service) ListByUser(context context.Context, userID int64) ([]*Personal, error) {
	return service.repo.ListByUser(context, userID)
}

func (service *Service) Get(context context.Context, id int64) (*Personal, error) {
	return service.repo.Get(context, id)
}

func validatePersonal(personal *Personal) error {
	personal.Name = validate.Text(personal.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, personal.Name).MaxLen(FieldName, personal.Name, MaxNameLength)
	return validator.Err()
}

// Create stores a new profile owned by ownerID.
func (service *Service) Create(context context.Context, ownerID int64, personal *Personal) error {
	personal.UserID = ownerID
	if err := validatePersonal(personal); err != nil {
		return err
	}

	if err := service.repo.Create(context, personal); err != nil {
		return err
	}

	service.logger.InfoContext(context, "personal_created",
		slog.Int64("personal_id", personal.ID),
		slog.Int64("user_id", ownerID),
	)
	return nil
}

// Update renames a profile and reassigns it to ownerID, the caller.
func (service *Service) Update(context context.Context, id, ownerID int64, personal *Personal) error {
	personal.ID = id
	personal.UserID = ownerID
	if err := validatePersonal(personal); err != nil {
		return err
	}

	if err := service.repo.Update(context, personal); err != nil {
		return err
	}

	service.logger.InfoContext(context, "personal_updated", slog.Int64("personal_id", id))
	return nil
}

// Delete removes a profile and returns it as it was.
func (service *Service) Delete(context context.Context, id int64) (*Personal, error) {
	personal, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return nil, err
	}

	service.logger.WarnContext(context, "personal_deleted", slog.Int64("personal_id", id))
	return personal, nil
}
