package opsnotify

import (
	"context"
	"log/slog"
	"time"
)

const throttleKeyPrefix = "throttle:"

// Throttle decides whether an event with the given fingerprint was already
// let through within window. A false answer marks the fingerprint as seen.
type Throttle interface {
	IsThrottled(ctx context.Context, fingerprint string, window time.Duration) bool
}

// ThrottleBackend is a throttle store that can fail, e.g. a remote cache.
type ThrottleBackend interface {
	CheckAndMark(ctx context.Context, fingerprint string, window time.Duration) (bool, error)
}

func throttleKey(fingerprint string) string {
	return throttleKeyPrefix + fingerprint
}

// FallbackThrottle consults primary and answers from the in-memory store
// whenever primary returns an error. Both paths apply the same
// check-then-set semantics, so callers only see a difference in persistence.
type FallbackThrottle struct {
	primary  ThrottleBackend
	fallback *MemoryThrottle
}

// NewFallbackThrottle builds a throttle over primary. A nil primary means
// the in-memory store answers every call.
func NewFallbackThrottle(primary ThrottleBackend, fallback *MemoryThrottle) *FallbackThrottle {
	if fallback == nil {
		fallback = NewMemoryThrottle()
	}
	return &FallbackThrottle{primary: primary, fallback: fallback}
}

func (t *FallbackThrottle) IsThrottled(ctx context.Context, fingerprint string, window time.Duration) bool {
	if window <= 0 {
		return false
	}
	if t.primary == nil {
		return t.fallback.IsThrottled(ctx, fingerprint, window)
	}

	throttled, err := t.primary.CheckAndMark(ctx, fingerprint, window)
	if err != nil {
		slog.Warn("[Throttle] Primary store unavailable, using in-memory fallback",
			"fingerprint", fingerprint,
			"error", err)
		return t.fallback.IsThrottled(ctx, fingerprint, window)
	}
	return throttled
}
