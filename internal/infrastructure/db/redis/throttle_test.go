package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestThrottle(t *testing.T) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewLoginThrottle(client, 3, time.Minute), mr
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), Config{Addr: addr, DialTimeout: 200 * time.Millisecond}, zerolog.Nop())
	assert.Error(t, err)
}

func TestLoginThrottle_LocksAfterMaxAttempts(t *testing.T) {
	throttle, mr := setupTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	}
	locked, err := throttle.Locked(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, locked, "should not be locked before reaching max attempts")

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	locked, err = throttle.Locked(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, locked, "expected lock after max attempts")

	assert.True(t, mr.Exists("login_lock:alice"))
	assert.Equal(t, time.Minute, mr.TTL("login_lock:alice"))

	other, err := throttle.Locked(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, other, "locks are per username")
}

func TestLoginThrottle_LockExpiresAfterTTL(t *testing.T) {
	throttle, mr := setupTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	}
	locked, err := throttle.Locked(ctx, "alice")
	require.NoError(t, err)
	require.True(t, locked)

	mr.FastForward(time.Minute + time.Second)

	locked, err = throttle.Locked(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, locked, "lock should expire after the TTL")
	assert.False(t, mr.Exists("login_fail:alice"), "failure counter should expire with the window")

	// A fresh window starts from zero.
	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	locked, err = throttle.Locked(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestLoginThrottle_ResetClearsLock(t *testing.T) {
	throttle, mr := setupTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	}
	require.NoError(t, throttle.Reset(ctx, "alice"))

	locked, err := throttle.Locked(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, locked, "expected lock cleared after reset")
	assert.False(t, mr.Exists("login_fail:alice"))
}

func TestLoginThrottle_ServerDown(t *testing.T) {
	throttle, mr := setupTestThrottle(t)
	mr.Close()

	_, err := throttle.Locked(context.Background(), "alice")
	assert.Error(t, err)
	assert.Error(t, throttle.RecordFailure(context.Background(), "alice"))
}

func TestNewLoginThrottle_Defaults(t *testing.T) {
	th := NewLoginThrottle(nil, 0, 0)
	assert.Equal(t, defaultMaxAttempts, th.maxAttempts)
	assert.Equal(t, defaultLockTTL, th.lockTTL)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "login_fail:bob", failKey("bob"))
	assert.Equal(t, "login_lock:bob", lockKey("bob"))
}
