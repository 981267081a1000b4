// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package authtest provides an in-memory [auth.UserRepository] for handler
// and service tests that must not depend on PostgreSQL.
package authtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/users/auth"
	"github.com/taibuivan/persona/pkg/pagination"
)

// Users mirrors the behaviour of the Postgres store: sequential ids, unique
// emails and NotFound errors.
type Users struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]auth.User
}

// NewUsers returns an empty repository whose first id is 1.
func NewUsers() *Users {
	return &Users{nextID: 1, rows: make(map[int64]auth.User)}
}

// Seed stores user under a fixed id, bypassing the sequence.
func (users *Users) Seed(user auth.User) *auth.User {
	users.mu.Lock()
	defer users.mu.Unlock()

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	users.rows[user.ID] = user
	if user.ID >= users.nextID {
		users.nextID = user.ID + 1
	}
	return &user
}

func (users *Users) FindByID(_ context.Context, id int64) (*auth.User, error) {
	users.mu.Lock()
	defer users.mu.Unlock()

	user, ok := users.rows[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &user, nil
}

func (users *Users) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	users.mu.Lock()
	defer users.mu.Unlock()

	for _, user := range users.rows {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (users *Users) List(_ context.Context, params pagination.Params) ([]*auth.User, error) {
	users.mu.Lock()
	defer users.mu.Unlock()

	ids := make([]int64, 0, len(users.rows))
	for id := range users.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	page := make([]*auth.User, 0, params.Limit)
	for index := params.Offset(); index < len(ids) && len(page) < params.Limit; index++ {
		user := users.rows[ids[index]]
		page = append(page, &user)
	}
	return page, nil
}

func (users *Users) Count(context.Context) (int, error) {
	users.mu.Lock()
	defer users.mu.Unlock()
	return len(users.rows), nil
}

func (users *Users) Create(_ context.Context, user *auth.User) error {
	users.mu.Lock()
	defer users.mu.Unlock()

	if users.emailTaken(user.Email, 0) {
		return apperr.BadRequest("Email already exists")
	}

	now := time.Now().UTC()
	user.ID = users.nextID
	user.CreatedAt, user.UpdatedAt = now, now
	users.nextID++
	users.rows[user.ID] = *user
	return nil
}

func (users *Users) Update(_ context.Context, user *auth.User) error {
	users.mu.Lock()
	defer users.mu.Unlock()

	existing, ok := users.rows[user.ID]
	if !ok {
		return apperr.NotFound("User")
	}
	if users.emailTaken(user.Email, user.ID) {
		return apperr.BadRequest("Email already exists")
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	users.rows[user.ID] = *user
	return nil
}

func (users *Users) Delete(_ context.Context, id int64) error {
	users.mu.Lock()
	defer users.mu.Unlock()

	if _, ok := users.rows[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(users.rows, id)
	return nil
}

func (users *Users) emailTaken(email string, except int64) bool {
	for id, user := range users.rows {
		if id != except && user.Email == email {
			return true
		}
	}
	return false
}
