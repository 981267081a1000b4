// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the time-ordered identifiers used for request
correlation ids and token ids (the "jti" claim).

UUIDv7 values sort by creation time, which keeps denylist keys and log
correlation ids roughly chronological.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string, falling back to a random v4 when the
// time-ordered generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
