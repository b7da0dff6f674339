package ratelimit

import (
	"context"
	"sync"
	"time"
)

// maxTrackedKeys bounds limiter memory: once more distinct clients than
// this are tracked, the whole table is cleared rather than evicting
// per-key. Coarse, but keeps the hot path a single map lookup.
const maxTrackedKeys = 10000

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a single-process fixed-window counter
type MemoryLimiter struct {
	cfg     Config
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

// Ensure MemoryLimiter implements Limiter
var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates an in-process limiter
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg,
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// Allow counts the request against clientKey's window
func (l *MemoryLimiter) Allow(_ context.Context, clientKey string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if len(l.entries) > maxTrackedKeys {
		l.entries = make(map[string]*windowEntry)
	}

	entry, ok := l.entries[clientKey]
	if !ok || now.After(entry.resetAt) {
		entry = &windowEntry{count: 0, resetAt: now.Add(l.cfg.Window)}
		l.entries[clientKey] = entry
	}

	entry.count++

	remaining := l.cfg.Requests - entry.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   entry.count <= l.cfg.Requests,
		Limit:     l.cfg.Requests,
		Remaining: remaining,
		ResetAt:   entry.resetAt,
	}, nil
}

// TrackedKeys reports how many distinct clients are currently counted
func (l *MemoryLimiter) TrackedKeys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
