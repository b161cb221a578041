package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// LoginLimiter throttles repeated failed logins per contact using Redis
// counters. With no Redis client configured it admits everything.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter builds the limiter.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func (l *LoginLimiter) key(contact string) string {
	return "login_failures:" + contact
}

// Allow checks whether the contact is under the failure threshold. Redis
// being unreachable never blocks logins.
func (l *LoginLimiter) Allow(ctx context.Context, contact string) error {
	if l == nil || l.client == nil {
		return nil
	}
	count, err := l.client.Get(ctx, l.key(contact)).Int()
	if err != nil {
		return nil
	}
	if count >= l.maxAttempts {
		return util.NewRateLimited("too many failed login attempts, try again later")
	}
	return nil
}

// RecordFailure counts one failed attempt within the window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, contact string) {
	if l == nil || l.client == nil {
		return
	}
	key := l.key(contact)
	if count, err := l.client.Incr(ctx, key).Result(); err == nil && count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, contact string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, l.key(contact))
}
