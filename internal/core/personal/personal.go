// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package personal manages the personal profiles owned by users.
package personal

import "time"

// Personal is a named profile belonging to one user. The owner is always the
// authenticated caller at write time.
type Personal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldName = "name"
)

// MaxNameLength bounds the profile name column.
const MaxNameLength = 255

const resourcePersonal = "Personal"

// # Response Messages

const (
	MessageCreated = "Personal created successfully"
	MessageUpdated = "Personal updated successfully"
	MessageFound   = "Personal found"
	MessageDeleted = "Personal deleted successfully"
)
