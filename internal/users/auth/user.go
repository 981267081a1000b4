// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user identity and token authentication.

It defines the User entity, the user directory the rest of the API reads
identities from, the token service that issues and verifies access and
refresh tokens, and the login, refresh and logout use cases.
*/
package auth

import (
	"time"

	"github.com/taibuivan/persona/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Snapshot returns the copy of the user embedded in token claims, with the
// password replaced by a fixed mask.
func (user *User) Snapshot() sec.UserSnapshot {
	return sec.UserSnapshot{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  sec.MaskedPassword,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Session is the login and refresh response body: the user's public fields
// flattened next to the freshly issued token pair.
type Session struct {
	*User
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
