package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/example/nigelapi/internal/prime"
)

// Value stores a computed result and when it was computed.
type Value struct {
	Result     prime.Result
	ComputedAt time.Time
}

type item struct {
	val       Value
	expiresAt time.Time
}

// Cache provides a TTL cache of sieve results with singleflight coalescing
// per input. The computation is deterministic, so the TTL exists only to
// bound memory, not to manage staleness.
type Cache struct {
	mu    sync.RWMutex
	items map[int]item
	ttl   time.Duration
	group singleflight.Group
}

func New(ttl time.Duration) *Cache {
	return &Cache{items: make(map[int]item), ttl: ttl}
}

// GetOrCompute returns a cached value if valid; otherwise it coalesces
// concurrent computations for the same n using singleflight and stores the
// result. Returns the value, source ("cache" or "sieve"), and any error
// from compute.
func (c *Cache) GetOrCompute(ctx context.Context, n int, compute func(context.Context) (Value, error)) (Value, string, error) {
	// fast path: cache hit
	c.mu.RLock()
	it, ok := c.items[n]
	if ok && time.Now().Before(it.expiresAt) {
		v := it.val
		c.mu.RUnlock()
		return v, "cache", nil
	}
	c.mu.RUnlock()

	// singleflight to coalesce concurrent misses
	res, err, _ := c.group.Do(strconv.Itoa(n), func() (interface{}, error) {
		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items[n] = item{val: v, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return Value{}, "", err
	}
	return res.(Value), "sieve", nil
}

// Len returns the number of items in the cache (for tests).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
