package dal

import (
	"context"
	"sync"
)

// requestCache memoizes read results for the lifetime of a single request.
// It is injected into the request context by middleware and dropped with
// it, so there is no invalidation and no cross-request sharing.
type requestCache struct {
	mu      sync.Mutex
	entries map[string]any
}

func (c *requestCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *requestCache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

type cacheKey struct{}

// WithRequestCache attaches a fresh memoization cache to the context.
func WithRequestCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheKey{}, &requestCache{entries: map[string]any{}})
}

func cacheFrom(ctx context.Context) *requestCache {
	c, _ := ctx.Value(cacheKey{}).(*requestCache)
	return c
}
