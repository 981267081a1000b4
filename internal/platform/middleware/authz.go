// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/constants"
	"github.com/taibuivan/persona/internal/platform/ctxutil"
	"github.com/taibuivan/persona/internal/platform/metrics"
	"github.com/taibuivan/persona/internal/platform/respond"
	"github.com/taibuivan/persona/internal/platform/sec"
)

// AccessTokenVerifier decodes a bearer token with the access secret.
//
// Defining it here decouples the middleware from the auth service and lets
// tests count how often verification actually runs.
type AccessTokenVerifier interface {
	VerifyAccessToken(token string) (*sec.Claims, error)
}

/*
Authenticate is the access guard for protected routes.

# Flow
 1. Extract 'Authorization: Bearer <token>'. Absent or malformed headers are
    rejected without touching the verifier.
 2. Decode the token with the access secret.
 3. Any failure answers 401 {"message":"Unauthorized","data":null}; the reason
    is kept server-side (debug log, metric label).
 4. On success the [ctxutil.Principal] is attached to the request context.
*/
func Authenticate(verifier AccessTokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, err := BearerToken(request)
			if err != nil {
				Reject(writer, request, err)
				return
			}

			claims, err := verifier.VerifyAccessToken(token)
			if err != nil {
				Reject(writer, request, err)
				return
			}

			metrics.GuardDecision("authorized")

			// Downstream log lines carry the subject
			ctx := ctxutil.WithPrincipal(request.Context(), ctxutil.Principal{UserID: claims.UserID})
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.Int64("user_id", claims.UserID)))

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

/*
BearerToken extracts the token from the Authorization header.

The header must split into exactly two space-separated parts, the scheme is
compared case-insensitively and the token must be non-empty.

Returns:
  - string: The raw compact token
  - error: sec.ErrMissingHeader for any other shape
*/
func BearerToken(request *http.Request) (string, error) {
	parts := strings.Split(request.Header.Get(constants.HeaderAuthorization), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], constants.BearerScheme) || parts[1] == "" {
		return "", sec.ErrMissingHeader
	}
	return parts[1], nil
}

// Reject answers 401 with the uniform body and records the failure kind.
// The refresh and logout handlers share it so every token failure looks the same.
func Reject(writer http.ResponseWriter, request *http.Request, reason error) {
	outcome := Outcome(reason)
	metrics.GuardDecision(outcome)

	ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "access_guard_rejected",
		slog.String("outcome", outcome),
		slog.String("reason", reason.Error()),
	)

	respond.Error(writer, request, apperr.Unauthorized(constants.MessageUnauthorized))
}

// Outcome maps a token failure onto a low-cardinality metric label.
func Outcome(err error) string {
	switch {
	case errors.Is(err, sec.ErrMissingHeader):
		return "missing_header"
	case errors.Is(err, sec.ErrExpired):
		return "expired"
	case errors.Is(err, sec.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, sec.ErrMalformedToken):
		return "malformed"
	default:
		return "rejected"
	}
}
