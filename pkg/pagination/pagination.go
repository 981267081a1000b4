// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination parses page/limit query parameters and builds the
// "meta" block of list responses.
package pagination

import (
	"net/http"
	"strconv"
)

// Pages are 1-indexed. A limit above MaxLimit resets to DefaultLimit rather
// than clamping.
const (
	DefaultLimit = 50
	MaxLimit     = 200
	DefaultPage  = 1
)

type Params struct {
	Page  int
	Limit int
}

// Offset feeds the stores' LIMIT/OFFSET queries.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is rendered as the "meta" object next to "data" in list envelopes.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta derives TotalPages from the row count reported by the store.
func NewMeta(params Params, total int) Meta {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit". Invalid or out-of-range values fall
// back to the defaults.
func FromRequest(request *http.Request) Params {
	page := queryInt(request, "page", DefaultPage)
	limit := queryInt(request, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

func queryInt(request *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(request.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return value
}
