// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the request-scoped context keys shared by the guard,
// the logging middleware and the handlers behind them.
package ctxkey

// key is unexported so values can only be set through ctxutil.
type key string

const (
	KeyRequestID key = "request_id"

	// KeyPrincipal carries the user id decoded from a valid access token.
	KeyPrincipal key = "principal"

	// KeyLogger carries a logger already tagged with request_id and, past the guard, user_id.
	KeyLogger key = "logger"
)
