// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account manages the user records behind authentication.

Registration is public; listing, reading, updating and deleting users require
an access token. Persistence is delegated to [auth.UserRepository] so the
user directory and this package always read the same rows.
*/
package account

// # Input Types

// CreateInput holds the data required to register a user.
type CreateInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateInput replaces a user's name and email. An empty Password keeps
// the current one.
type UpdateInput struct {
	Name     string
	Email    string
	Password string
}

// # Response Messages

const (
	MessageCreated = "User created successfully"
	MessageListed  = "Users found"
	MessageFound   = "User found"
	MessageUpdated = "User updated successfully"
	MessageDeleted = "User deleted successfully"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8
