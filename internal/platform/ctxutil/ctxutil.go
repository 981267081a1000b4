// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil reads and writes the per-request values the middleware chain
// attaches: correlation id, tagged logger and the authenticated principal.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/persona/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID stores the X-Request-ID value minted or echoed by the middleware.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID is empty outside an HTTP request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger falls back to slog.Default so services can log from tests and
// background jobs without a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity

// Principal is the identity attached to a request after access token verification.
//
// It carries the subject user id only. The user snapshot inside the token can
// be stale, so handlers load current state from the user directory.
type Principal struct {
	UserID int64
}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, ctxkey.KeyPrincipal, principal)
}

// GetPrincipal reports false on routes the access guard did not run on.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(ctxkey.KeyPrincipal).(Principal)
	return principal, ok
}
