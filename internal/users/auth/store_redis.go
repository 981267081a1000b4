// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/persona/internal/platform/constants"
)

// RedisTokenDenylist implements [TokenDenylist] using Redis keys with a TTL.
type RedisTokenDenylist struct {
	client redis.Cmdable
	now    func() time.Time
}

// NewTokenDenylist creates a new Redis-backed TokenDenylist.
func NewTokenDenylist(client redis.Cmdable) *RedisTokenDenylist {
	return &RedisTokenDenylist{client: client, now: time.Now}
}

func revokedKey(jti string) string {
	return constants.RedisPrefixRevokedRefresh + jti
}

/*
Revoke stores the jti until the token's own expiry.

Tokens that are already expired need no entry: the codec rejects them anyway.
*/
func (denylist *RedisTokenDenylist) Revoke(context context.Context, jti string, until time.Time) error {
	ttl := until.Sub(denylist.now())
	if ttl <= 0 {
		return nil
	}

	if err := denylist.client.Set(context, revokedKey(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_denylist_revoke_failed: %w", err)
	}

	return nil
}

// IsRevoked reports whether a key exists for jti.
func (denylist *RedisTokenDenylist) IsRevoked(context context.Context, jti string) (bool, error) {
	count, err := denylist.client.Exists(context, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_token_denylist_lookup_failed: %w", err)
	}

	return count > 0, nil
}

// Enabled is always true for the Redis implementation.
func (denylist *RedisTokenDenylist) Enabled() bool { return true }

// NopDenylist is used when Redis is not configured: nothing is ever revoked
// and refresh tokens live until they expire.
type NopDenylist struct{}

func (NopDenylist) Revoke(context.Context, string, time.Time) error   { return nil }
func (NopDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
func (NopDenylist) Enabled() bool                                   { return false }
