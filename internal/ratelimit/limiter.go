// Package ratelimit provides per-client request counting over a fixed
// window. The limiter is an injected interface so the request-handling
// layer never depends on a concrete backend: a Redis-backed counter is
// used when a shared cache is configured (correct across process
// instances), with an in-process fallback otherwise.
package ratelimit

import (
	"context"
	"time"
)

//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_mocks.go -package=mocks

// Result reports the state of a client's window after one request
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts one request against the client's fixed window and
// reports whether it is allowed
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (Result, error)
}

// Config holds the shared window parameters
type Config struct {
	Requests int
	Window   time.Duration
}

// DefaultConfig is 100 requests per 60-second window
func DefaultConfig() Config {
	return Config{Requests: 100, Window: 60 * time.Second}
}
