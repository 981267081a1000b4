// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. The [TokenCodec] is a pure signing primitive: it knows
// nothing about users or token kinds beyond the [Secret] it is handed.
package sec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Token Kinds & Secrets

// Kind distinguishes access tokens from refresh tokens.
//
// The wire format is identical for both kinds. Only the secret (and the TTL
// chosen by the issuer) differs, so a token of one kind fails the signature
// check of the other.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Secret is an HMAC key bound to a token [Kind].
//
// Secrets are loaded once at process start and never mutated.
type Secret struct {
	kind Kind
	key  []byte
}

// NewSecret validates and wraps a raw secret string.
func NewSecret(kind Kind, value string) (Secret, error) {
	if strings.TrimSpace(value) == "" {
		return Secret{}, fmt.Errorf("%w: %s token secret is empty", ErrConfigurationMissing, kind)
	}
	return Secret{kind: kind, key: []byte(value)}, nil
}

// Kind reports which token kind the secret signs.
func (s Secret) Kind() Kind { return s.kind }

// Equal reports whether two secrets share the same key material.
func (s Secret) Equal(other Secret) bool { return string(s.key) == string(other.key) }

func (s Secret) present() bool { return len(s.key) > 0 }

// # Claims

// ClaimsVersion is the schema version written into every token.
const ClaimsVersion = 1

// MaskedPassword replaces the password in every embedded user snapshot.
const MaskedPassword = "********"

// UserSnapshot is the copy of the user record embedded in a token.
//
// It may be stale relative to the directory. Handlers must re-fetch the user
// by [Claims.UserID] instead of trusting it.
type UserSnapshot struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Claims is the payload signed into every token.
//
// The top-level "sub" key carries the user snapshot object and shadows the
// string subject of [jwt.RegisteredClaims]. "exp", "iat" and "jti" come from
// the embedded registered claims.
type Claims struct {
	jwt.RegisteredClaims

	Version int          `json:"ver"`
	UserID  int64        `json:"id"`
	Subject UserSnapshot `json:"sub"`
}

// # Codec

// TokenCodec encodes [Claims] into compact HS256 tokens and decodes them back.
//
// It holds no secrets and no mutable state, so a single instance is shared by
// every request.
type TokenCodec struct {
	now    func() time.Time
	parser *jwt.Parser
}

// CodecOption customizes a [TokenCodec].
type CodecOption func(*TokenCodec)

// WithClock replaces the wall clock used for issued-at, expiry and validation.
func WithClock(now func() time.Time) CodecOption {
	return func(codec *TokenCodec) {
		codec.now = now
	}
}

// NewTokenCodec constructs a codec restricted to HS256.
func NewTokenCodec(options ...CodecOption) *TokenCodec {
	codec := &TokenCodec{now: time.Now}
	for _, option := range options {
		option(codec)
	}

	codec.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(codec.now),
	)

	return codec
}

// Encode signs claims with secret. The expiry is the creation instant plus ttl,
// truncated to whole seconds like every NumericDate.
func (codec *TokenCodec) Encode(claims Claims, secret Secret, ttl time.Duration) (string, error) {
	if !secret.present() {
		return "", fmt.Errorf("sec: encode: %w", ErrConfigurationMissing)
	}

	issuedAt := codec.now()
	claims.Version = ClaimsVersion
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signed, nil
}

// Decode verifies token against secret and returns the embedded claims.
//
// # Errors
//   - [ErrMalformedToken]: not three base64url segments, bad JSON, missing
//     expiry, or an unknown schema version.
//   - [ErrInvalidSignature]: HMAC mismatch or a signing method other than HS256.
//   - [ErrExpired]: the current instant is at or after the expiry.
func (codec *TokenCodec) Decode(token string, secret Secret) (*Claims, error) {
	if !secret.present() {
		return nil, fmt.Errorf("sec: decode: %w", ErrConfigurationMissing)
	}

	claims := &Claims{}
	_, err := codec.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret.key, nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if claims.Version != ClaimsVersion || claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: unsupported claims (ver=%d)", ErrMalformedToken, claims.Version)
	}

	return claims, nil
}

// classify folds the jwt library's error tree into the codec taxonomy.
//
// jwt/v5 checks the signature before the registered claims, so an expired
// token signed with a foreign secret is reported as a signature failure.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
}
