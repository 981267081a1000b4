// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/sec"
	"github.com/taibuivan/persona/internal/platform/validate"
	"github.com/taibuivan/persona/internal/users/auth"
	"github.com/taibuivan/persona/pkg/pagination"
)

// errEmailExists is returned when another account already owns the email.
var errEmailExists = apperr.BadRequest("Email already exists")

// Service implements user management use cases.
type Service struct {
	userRepository auth.UserRepository
	hasher         *sec.PasswordHasher
}

// NewService constructs an account [Service].
func NewService(users auth.UserRepository, hasher *sec.PasswordHasher) *Service {
	return &Service{userRepository: users, hasher: hasher}
}

/*
Create hashes the password and persists a new user.

Returns:
  - *auth.User: Created entity with its generated id
  - error: "Email already exists" (400) or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*auth.User, error) {
	email := validate.NormalizeEmail(input.Email)

	if _, err := service.userRepository.FindByEmail(context, email); err == nil {
		return nil, errEmailExists
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user := &auth.User{
		Name:         validate.Text(input.Name),
		Email:        email,
		PasswordHash: hash,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

/*
Update rewrites name, email and optionally the password of a user.

Returns:
  - *auth.User: The updated entity
  - error: apperr.NotFound("User"), "Email already exists" (400) or storage errors
*/
func (service *Service) Update(context context.Context, id int64, input UpdateInput) (*auth.User, error) {
	user, err := service.userRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	email := validate.NormalizeEmail(input.Email)

	// Another account may already own the new address
	owner, err := service.userRepository.FindByEmail(context, email)
	switch {
	case err == nil && owner.ID != id:
		return nil, errEmailExists
	case err != nil && !apperr.IsNotFound(err):
		return nil, err
	}

	user.Name = validate.Text(input.Name)
	user.Email = email

	if input.Password != "" {
		hash, err := service.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := service.userRepository.Update(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// List returns one page of users and the total count.
func (service *Service) List(context context.Context, params pagination.Params) ([]*auth.User, int, error) {
	users, err := service.userRepository.List(context, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := service.userRepository.Count(context)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Get returns a single user or apperr.NotFound("User").
func (service *Service) Get(context context.Context, id int64) (*auth.User, error) {
	return service.userRepository.FindByID(context, id)
}

// Delete removes a user and returns the record as it was before deletion.
func (service *Service) Delete(context context.Context, id int64) (*auth.User, error) {
	user, err := service.userRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.userRepository.Delete(context, id); err != nil {
		return nil, err
	}

	return user, nil
}
