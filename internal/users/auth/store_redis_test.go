package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCmdable implements the redis.Cmdable calls used by the denylist.
// Any other command panics through the nil embedded interface.
type MockCmdable struct {
	redis.Cmdable
	mock.Mock
}

func (m *MockCmdable) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(key, value, expiration)
	return redis.NewStatusResult(args.String(0), args.Error(1))
}

func (m *MockCmdable) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(keys)
	return redis.NewIntResult(args.Get(0).(int64), args.Error(1))
}

var denylistNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newRedisDenylist(client redis.Cmdable) *RedisTokenDenylist {
	return &RedisTokenDenylist{client: client, now: func() time.Time { return denylistNow }}
}

func TestRevokedKey(t *testing.T) {
	assert.Equal(t, "auth:revoked_refresh:0192f1c2", revokedKey("0192f1c2"))
}

func TestRedisTokenDenylist_SkipsExpiredTokens(t *testing.T) {
	client := new(MockCmdable)
	denylist := newRedisDenylist(client)

	assert.NoError(t, denylist.Revoke(context.Background(), "jti", denylistNow))
	assert.NoError(t, denylist.Revoke(context.Background(), "jti", denylistNow.Add(-time.Minute)))
	assert.True(t, denylist.Enabled())

	client.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestRedisTokenDenylist_RevokeKeepsKeyUntilExpiry(t *testing.T) {
	client := new(MockCmdable)
	denylist := newRedisDenylist(client)
	until := denylistNow.Add(168 * time.Hour)

	client.On("Set", "auth:revoked_refresh:0192f1c2", 1, 168*time.Hour).Return("OK", nil).Once()

	require.NoError(t, denylist.Revoke(context.Background(), "0192f1c2", until))
	client.AssertExpectations(t)
}

func TestRedisTokenDenylist_RevokeError(t *testing.T) {
	client := new(MockCmdable)
	denylist := newRedisDenylist(client)
	unavailable := errors.New("connection refused")

	client.On("Set", "auth:revoked_refresh:jti", 1, time.Minute).Return("", unavailable).Once()

	err := denylist.Revoke(context.Background(), "jti", denylistNow.Add(time.Minute))
	assert.ErrorIs(t, err, unavailable)
	assert.ErrorContains(t, err, "redis_token_denylist_revoke_failed")
}

func TestRedisTokenDenylist_IsRevoked(t *testing.T) {
	tests := []struct {
		name    string
		count   int64
		revoked bool
	}{
		{"absent", 0, false},
		{"present", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockCmdable)
			client.On("Exists", []string{"auth:revoked_refresh:jti"}).Return(tt.count, nil).Once()

			revoked, err := newRedisDenylist(client).IsRevoked(context.Background(), "jti")
			require.NoError(t, err)
			assert.Equal(t, tt.revoked, revoked)
			client.AssertExpectations(t)
		})
	}
}

func TestRedisTokenDenylist_IsRevokedError(t *testing.T) {
	client := new(MockCmdable)
	unavailable := errors.New("i/o timeout")
	client.On("Exists", []string{"auth:revoked_refresh:jti"}).Return(int64(0), unavailable).Once()

	revoked, err := newRedisDenylist(client).IsRevoked(context.Background(), "jti")
	assert.False(t, revoked)
	assert.ErrorIs(t, err, unavailable)
	assert.ErrorContains(t, err, "redis_token_denylist_lookup_failed")
}

func TestNopDenylist(t *testing.T) {
	var denylist NopDenylist

	revoked, err := denylist.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, denylist.Revoke(context.Background(), "jti", denylistNow))
	assert.False(t, denylist.Enabled())
}
