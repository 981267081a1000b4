// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/persona/internal/platform/sec"
)

var issuedAt = time.Date(2025, 1, 30, 15, 23, 45, 0, time.UTC)

func mustSecret(t *testing.T, kind sec.Kind, value string) sec.Secret {
	t.Helper()
	secret, err := sec.NewSecret(kind, value)
	require.NoError(t, err)
	return secret
}

func sampleClaims(userID int64) sec.Claims {
	return sec.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "0194b6f2-7a1c-7000-8000-000000000001"},
		UserID:           userID,
		Subject: sec.UserSnapshot{
			ID:        userID,
			Name:      "John Doe",
			Email:     "john@example.com",
			Password:  sec.MaskedPassword,
			CreatedAt: issuedAt,
			UpdatedAt: issuedAt,
		},
	}
}

// clock returns a codec whose wall clock is read from *now.
func clock(now *time.Time) *sec.TokenCodec {
	return sec.NewTokenCodec(sec.WithClock(func() time.Time { return *now }))
}

/*
TestTokenCodec_RoundTrip verifies decode(encode(c)) returns c before expiry.
*/
func TestTokenCodec_RoundTrip(t *testing.T) {
	now := issuedAt
	codec := clock(&now)
	secret := mustSecret(t, sec.KindAccess, "access-secret")
	claims := sampleClaims(4)

	token, err := codec.Encode(claims, secret, 15*time.Minute)
	require.NoError(t, err)

	now = now.Add(14 * time.Minute)
	decoded, err := codec.Decode(token, secret)
	require.NoError(t, err)

	assert.Equal(t, sec.ClaimsVersion, decoded.Version)
	assert.Equal(t, claims.UserID, decoded.UserID)
	assert.Equal(t, claims.ID, decoded.ID)
	assert.Equal(t, claims.Subject.ID, decoded.Subject.ID)
	assert.Equal(t, claims.Subject.Name, decoded.Subject.Name)
	assert.Equal(t, claims.Subject.Email, decoded.Subject.Email)
	assert.Equal(t, sec.MaskedPassword, decoded.Subject.Password)
	assert.True(t, claims.Subject.CreatedAt.Equal(decoded.Subject.CreatedAt))
	assert.True(t, claims.Subject.UpdatedAt.Equal(decoded.Subject.UpdatedAt))

	require.NotNil(t, decoded.ExpiresAt)
	require.NotNil(t, decoded.IssuedAt)
	assert.Equal(t, issuedAt.Add(15*time.Minute).Unix(), decoded.ExpiresAt.Unix())
	assert.Equal(t, issuedAt.Unix(), decoded.IssuedAt.Unix())
}

/*
TestTokenCodec_WireFormat checks the compact layout and the payload keys.
*/
func TestTokenCodec_WireFormat(t *testing.T) {
	now := issuedAt
	codec := clock(&now)
	secret := mustSecret(t, sec.KindAccess, "access-secret")

	token, err := codec.Encode(sampleClaims(4), secret, time.Minute)
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	header, err := base64.RawURLEncoding.DecodeString(segments[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(header))

	rawPayload, err := base64.RawURLEncoding.DecodeString(segments[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rawPayload, &payload))

	assert.EqualValues(t, 4, payload["id"])
	assert.EqualValues(t, issuedAt.Add(time.Minute).Unix(), payload["exp"])

	subject, ok := payload["sub"].(map[string]any)
	require.True(t, ok, "sub must be the user snapshot object")
	assert.EqualValues(t, 4, subject["id"])
	assert.Equal(t, "john@example.com", subject["email"])
	assert.Equal(t, sec.MaskedPassword, subject["password"])
}

/*
TestTokenCodec_KindIsolation verifies a token signed with one secret is
rejected by the other.
*/
func TestTokenCodec_KindIsolation(t *testing.T) {
	now := issuedAt
	codec := clock(&now)
	accessSecret := mustSecret(t, sec.KindAccess, "access-secret")
	refreshSecret := mustSecret(t, sec.KindRefresh, "refresh-secret")

	accessToken, err := codec.Encode(sampleClaims(7), accessSecret, time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(accessToken, refreshSecret)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)

	refreshToken, err := codec.Encode(sampleClaims(7), refreshSecret, time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(refreshToken, accessSecret)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)
}

/*
TestTokenCodec_Expiry covers the inclusive expiry boundary.
*/
func TestTokenCodec_Expiry(t *testing.T) {
	secret := mustSecret(t, sec.KindAccess, "access-secret")

	tests := []struct {
		name     string
		issuedAt time.Time
		ttl      time.Duration
		decodeAt time.Duration
		wantErr  error
	}{
		{"ttl_zero_one_millisecond_later", issuedAt, 0, time.Millisecond, sec.ErrExpired},
		{"ttl_zero_exact_boundary", issuedAt, 0, 0, sec.ErrExpired},
		{"ttl_zero_sub_second_issue", issuedAt.Add(500 * time.Millisecond), 0, 0, sec.ErrExpired},
		{"exact_expiry_instant", issuedAt, time.Minute, time.Minute, sec.ErrExpired},
		{"one_second_before_expiry", issuedAt, time.Minute, time.Minute - time.Second, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.issuedAt
			codec := clock(&now)

			token, err := codec.Encode(sampleClaims(1), secret, tt.ttl)
			require.NoError(t, err)

			now = now.Add(tt.decodeAt)
			_, err = codec.Decode(token, secret)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

/*
TestTokenCodec_Malformed verifies unparsable input never reaches signature checks.
*/
func TestTokenCodec_Malformed(t *testing.T) {
	now := issuedAt
	codec := clock(&now)
	secret := mustSecret(t, sec.KindAccess, "access-secret")

	for _, token := range []string{"", "invalid.token", "invalid.token.value", "a.b.c.d", "ivalid-token"} {
		t.Run(token, func(t *testing.T) {
			_, err := codec.Decode(token, secret)
			assert.ErrorIs(t, err, sec.ErrMalformedToken)
		})
	}
}

/*
TestTokenCodec_TamperedPayload verifies a modified payload fails the signature.
*/
func TestTokenCodec_TamperedPayload(t *testing.T) {
	now := issuedAt
	codec := clock(&now)
	secret := mustSecret(t, sec.KindAccess, "access-secret")

	token, err := codec.Encode(sampleClaims(4), secret, time.Hour)
	require.NoError(t, err)

	forged, err := codec.Encode(sampleClaims(1), secret, time.Hour)
	require.NoError(t, err)

	// Splice the payload of a token for user 1 into the signature of user 4.
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	spliced := strings.Join([]string{parts[0], forgedParts[1], parts[2]}, ".")

	_, err = codec.Decode(spliced, secret)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)
}

/*
TestTokenCodec_RejectsForeignShapes covers other algorithms and unknown schema versions.
*/
func TestTokenCodec_RejectsForeignShapes(t *testing.T) {
	now := issuedAt
	codec := clock(&now)
	secret := mustSecret(t, sec.KindAccess, "access-secret")
	exp := jwt.NewNumericDate(issuedAt.Add(time.Hour))

	t.Run("hs512", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"ver": sec.ClaimsVersion, "id": 4, "exp": exp,
		}).SignedString([]byte("access-secret"))
		require.NoError(t, err)

		_, err = codec.Decode(token, secret)
		assert.ErrorIs(t, err, sec.ErrInvalidSignature)
	})

	t.Run("unknown_version", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"ver": 99, "id": 4, "exp": exp,
		}).SignedString([]byte("access-secret"))
		require.NoError(t, err)

		_, err = codec.Decode(token, secret)
		assert.ErrorIs(t, err, sec.ErrMalformedToken)
	})

	t.Run("missing_expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"ver": sec.ClaimsVersion, "id": 4,
		}).SignedString([]byte("access-secret"))
		require.NoError(t, err)

		_, err = codec.Decode(token, secret)
		assert.ErrorIs(t, err, sec.ErrMalformedToken)
	})
}

/*
TestNewSecret_Empty verifies blank secrets are a configuration error.
*/
func TestNewSecret_Empty(t *testing.T) {
	for _, value := range []string{"", "   "} {
		_, err := sec.NewSecret(sec.KindRefresh, value)
		assert.ErrorIs(t, err, sec.ErrConfigurationMissing)
	}

	var zero sec.Secret
	_, err := sec.NewTokenCodec().Encode(sampleClaims(1), zero, time.Minute)
	assert.ErrorIs(t, err, sec.ErrConfigurationMissing)
}
