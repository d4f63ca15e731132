package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultLockTTL     = 15 * time.Minute
)

// LoginThrottle counts failed logins per username in Redis.
// Key formats: login_fail:<username> (counter), login_lock:<username> (flag).
// The counter window slides with each failure; the lock lasts lockTTL.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	lockTTL     time.Duration
}

// NewLoginThrottle creates a LoginThrottle. Non-positive values fall back to
// 5 attempts and a 15 minute window.
func NewLoginThrottle(client *redis.Client, maxAttempts int, lockTTL time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, lockTTL: lockTTL}
}

// Locked reports whether the username is currently locked out.
func (t *LoginThrottle) Locked(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Exists(ctx, lockKey(username)).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n > 0, nil
}

// RecordFailure increments the failure counter and sets the lock once the
// counter reaches maxAttempts.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	pipe := t.client.TxPipeline()
	incr := pipe.Incr(ctx, failKey(username))
	pipe.Expire(ctx, failKey(username), t.lockTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}

	if incr.Val() >= int64(t.maxAttempts) {
		if err := t.client.Set(ctx, lockKey(username), "1", t.lockTTL).Err(); err != nil {
			return fmt.Errorf("throttle lock: %w", err)
		}
	}
	return nil
}

// Reset clears the counter and any lock after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, failKey(username), lockKey(username)).Err()
}

func failKey(username string) string { return "login_fail:" + username }
func lockKey(username string) string { return "login_lock:" + username }
