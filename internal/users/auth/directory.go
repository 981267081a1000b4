// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/sec"
	"github.com/taibuivan/persona/internal/platform/validate"
)

// Directory is the read side of user identity used by authentication.
type Directory struct {
	users  UserRepository
	hasher *sec.PasswordHasher
}

// NewDirectory constructs a [Directory].
func NewDirectory(users UserRepository, hasher *sec.PasswordHasher) *Directory {
	return &Directory{users: users, hasher: hasher}
}

// FindByID returns the current state of the user, or apperr.NotFound("User").
func (directory *Directory) FindByID(context context.Context, id int64) (*User, error) {
	return directory.users.FindByID(context, id)
}

// FindByEmail looks a user up by normalized email.
func (directory *Directory) FindByEmail(context context.Context, email string) (*User, error) {
	return directory.users.FindByEmail(context, validate.NormalizeEmail(email))
}

/*
VerifyCredentials checks an email and password pair.

Returns:
  - *User: The matching account
  - error: apperr.NotFound("User") for an unknown email,
    apperr.BadRequest("Invalid email or password") for a wrong password
*/
func (directory *Directory) VerifyCredentials(context context.Context, email, password string) (*User, error) {
	user, err := directory.FindByEmail(context, email)
	if err != nil {
		return nil, err
	}

	if !directory.hasher.Matches(password, user.PasswordHash) {
		return nil, apperr.BadRequest(MessageBadCredentials)
	}

	return user, nil
}
