// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

import "context"

// Repository persists addresses.
//
// Create and Update fail with a 400 when PersonalID references no profile.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Address, int, error)
	ListByPersonal(context context.Context, personalID int64) ([]*Address, error)
	Get(context context.Context, id int64) (*Address, error)
	Create(context context.Context, address *Address) error
	Update(context context.Context, address *Address) error
	Delete(context context.Context, id int64) error
}
