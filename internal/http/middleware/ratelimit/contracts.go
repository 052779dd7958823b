package ratelimit

// Limiter decides whether a keyed request may proceed.
type Limiter interface {
	Allow(key string) bool
}
