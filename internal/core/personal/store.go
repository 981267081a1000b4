// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package personal

import "context"

// Repository persists personal profiles.
//
// Get, Update and Delete return apperr.NotFound("Personal") for unknown ids.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Personal, int, error)
	ListByUser(context context.Context, userID int64) ([]*Personal, error)
	Get(context context.Context, id int64) (*Personal, error)
	Create(context context.Context, personal *Personal) error
	Update(context context.Context, personal *Personal) error
	Delete(context context.Context, id int64) error
}
