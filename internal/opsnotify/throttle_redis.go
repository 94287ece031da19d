package opsnotify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = time.Second

// RedisThrottle stores throttle markers as keys with a TTL.
//
// The GET followed by SET is not atomic: two concurrent checks for the same
// fingerprint may both report "not throttled". An occasional duplicate alert
// is accepted.
type RedisThrottle struct {
	client redis.Cmdable
}

func NewRedisThrottle(client redis.Cmdable) *RedisThrottle {
	return &RedisThrottle{client: client}
}

// CheckAndMark returns true when a marker exists. An existing marker keeps
// its original expiry.
func (r *RedisThrottle) CheckAndMark(ctx context.Context, fingerprint string, window time.Duration) (bool, error) {
	if window <= 0 {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	key := throttleKey(fingerprint)
	err := r.client.Get(ctx, key).Err()
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, "1", window).Err(); err != nil {
		return false, fmt.Errorf("set %s: %w", key, err)
	}
	return false, nil
}
