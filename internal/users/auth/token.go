// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"fmt"
	"time"

	"github.com/taibuivan/persona/internal/platform/metrics"
	"github.com/taibuivan/persona/internal/platform/sec"
	"github.com/taibuivan/persona/pkg/uuid"
)

// TokenService issues and verifies the two token kinds.
//
// Each kind is bound to its own secret and TTL at construction; the service
// holds no mutable state and is shared by every request.
type TokenService struct {
	codec         *sec.TokenCodec
	accessSecret  sec.Secret
	refreshSecret sec.Secret
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

/*
NewTokenService binds the codec to the configured secrets.

Returns:
  - *TokenService: Ready-to-use issuer and verifier
  - error: sec.ErrConfigurationMissing when a secret is blank,
    sec.ErrSecretsNotDistinct when both kinds share one secret
*/
func NewTokenService(codec *sec.TokenCodec, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	access, err := sec.NewSecret(sec.KindAccess, accessSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := sec.NewSecret(sec.KindRefresh, refreshSecret)
	if err != nil {
		return nil, err
	}

	// One secret for both kinds would let a refresh token pass the access guard
	if access.Equal(refresh) {
		return nil, sec.ErrSecretsNotDistinct
	}

	return &TokenService{
		codec:         codec,
		accessSecret:  access,
		refreshSecret: refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssueAccessToken signs a short-lived token for user.
func (service *TokenService) IssueAccessToken(user *User) (string, error) {
	return service.issue(user, service.accessSecret, service.accessTTL)
}

// IssueRefreshToken signs a long-lived token for user.
func (service *TokenService) IssueRefreshToken(user *User) (string, error) {
	return service.issue(user, service.refreshSecret, service.refreshTTL)
}

// VerifyAccessToken decodes token with the access secret.
func (service *TokenService) VerifyAccessToken(token string) (*sec.Claims, error) {
	return service.codec.Decode(token, service.accessSecret)
}

// VerifyRefreshToken decodes token with the refresh secret.
func (service *TokenService) VerifyRefreshToken(token string) (*sec.Claims, error) {
	return service.codec.Decode(token, service.refreshSecret)
}

func (service *TokenService) issue(user *User, secret sec.Secret, ttl time.Duration) (string, error) {
	claims := sec.Claims{
		UserID:  user.ID,
		Subject: user.Snapshot(),
	}
	claims.ID = uuid.New()

	token, err := service.codec.Encode(claims, secret, ttl)
	if err != nil {
		return "", fmt.Errorf("auth_token_issue_failed: %w", err)
	}

	metrics.TokenIssued(string(secret.Kind()))
	return token, nil
}
