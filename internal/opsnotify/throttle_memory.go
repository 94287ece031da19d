package opsnotify

import (
	"context"
	"sync"
	"time"
)

// memoryCompactThreshold is the entry count above which expired markers are
// pruned before a new one is inserted.
const memoryCompactThreshold = 1000

// MemoryThrottle keeps throttle markers in process memory as absolute
// expiry times. Markers do not survive a restart.
type MemoryThrottle struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryThrottle() *MemoryThrottle {
	return &MemoryThrottle{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryThrottle) IsThrottled(ctx context.Context, fingerprint string, window time.Duration) bool {
	throttled, _ := m.CheckAndMark(ctx, fingerprint, window)
	return throttled
}

// CheckAndMark never returns an error. It satisfies ThrottleBackend so the
// memory store can also serve as a primary in tests and single-node setups.
func (m *MemoryThrottle) CheckAndMark(_ context.Context, fingerprint string, window time.Duration) (bool, error) {
	if window <= 0 {
		return false, nil
	}

	key := throttleKey(fingerprint)
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if expiresAt, ok := m.entries[key]; ok && now.Before(expiresAt) {
		return true, nil
	}

	if len(m.entries) > memoryCompactThreshold {
		m.compactLocked(now)
	}
	m.entries[key] = now.Add(window)
	return false, nil
}

// Len returns the number of tracked markers, expired ones included.
func (m *MemoryThrottle) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryThrottle) compactLocked(now time.Time) {
	for key, expiresAt := range m.entries {
		if !now.Before(expiresAt) {
			delete(m.entries, key)
		}
	}
}
