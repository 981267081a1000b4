// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "errors"

// # Token Error Taxonomy

var (
	// ErrMalformedToken indicates the string is not a parsable token.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidSignature indicates the signature does not match the secret.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrExpired indicates the token's expiry instant has been reached.
	ErrExpired = errors.New("token expired")

	// ErrMissingHeader indicates the Authorization header is absent or not a bearer credential.
	ErrMissingHeader = errors.New("missing bearer authorization header")

	// ErrConfigurationMissing indicates a required signing secret was not configured.
	// It is a startup failure, never a per-request one.
	ErrConfigurationMissing = errors.New("token secret not configured")

	// ErrSecretsNotDistinct indicates the access and refresh secrets are identical.
	ErrSecretsNotDistinct = errors.New("access and refresh token secrets must differ")
)
