// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides helpers for optional (nullable) fields.

Key Functions:
  - To: Creates a pointer from a value literal.
  - Val: Dereferences a pointer, returning the zero value if nil.
  - Or: Picks the first non-nil pointer.
  - NonBlank: Normalizes an optional string so that blank means absent.
*/
package pointer

import "strings"

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Or returns p unless it is nil, in which case it returns fallback.
func Or[T any](p, fallback *T) *T {
	if p == nil {
		return fallback
	}
	return p
}

// NonBlank trims the pointed-to string and returns nil when nothing is left.
func NonBlank(p *string) *string {
	if p == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
