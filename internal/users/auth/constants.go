// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "errors"

// # Errors

var (
	// ErrSubjectNotFound indicates a validly signed token whose user no longer exists.
	ErrSubjectNotFound = errors.New("token subject not found")

	// ErrTokenRevoked indicates a refresh token listed in the denylist.
	ErrTokenRevoked = errors.New("token revoked")
)

// # Field Identifiers

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// # Response Messages

const (
	MessageLoggedIn       = "User logged in successfully"
	MessageRefreshed      = "Token refreshed successfully"
	MessageLoggedOut      = "User logged out successfully"
	MessageBadCredentials = "Invalid email or password"
)
