// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package split parses comma-separated configuration values.
package split

import "strings"

// Comma splits val on commas into a trimmed slice of strings.
// Empty entries are dropped; an empty or blank input yields nil.
func Comma(val string) []string {
	var res []string
	for _, v := range strings.Split(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
