// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/persona/pkg/pagination"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound("User") or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByEmail returns the account with the given (normalized) email.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound("User") or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	// List returns one page of accounts ordered by id.
	List(context context.Context, params pagination.Params) ([]*User, error)

	// Count returns the total number of accounts.
	Count(context context.Context) (int, error)

	/*
		Create persists a brand-new user account and fills its generated
		ID and timestamps.
	*/
	Create(context context.Context, user *User) error

	/*
		Update persists name, email and password hash, and refreshes UpdatedAt.

		Returns:
		  - error: apperr.NotFound("User") when no row matched
	*/
	Update(context context.Context, user *User) error

	// Delete removes the account. Personal profiles and addresses cascade.
	Delete(context context.Context, id int64) error
}

// # Token Revocation

// TokenDenylist records refresh token ids that must no longer be accepted.
type TokenDenylist interface {

	/*
		Revoke lists jti until the token would have expired anyway.

		Parameters:
		  - context: context.Context
		  - jti: string (token id claim)
		  - until: time.Time (token expiry)
	*/
	Revoke(context context.Context, jti string, until time.Time) error

	// IsRevoked reports whether jti was revoked.
	IsRevoked(context context.Context, jti string) (bool, error)

	// Enabled reports whether revocations are actually stored.
	Enabled() bool
}
