package cache

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

const memorySweepInterval = 5 * time.Minute

// MemoryResponseCache keeps upstream response bodies in process memory.
// A background sweeper drops expired bodies so distinct request URLs do not pile up.
type MemoryResponseCache struct {
	store *Store[[]byte]
}

func NewMemoryResponseCache(clock clockwork.Clock) *MemoryResponseCache {
	store := NewStore[[]byte](clock)
	store.StartSweeper(memorySweepInterval)
	return &MemoryResponseCache{store: store}
}

func (c *MemoryResponseCache) Fetch(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	raw, err := c.store.GetOrLoad(ctx, key, ttl, load)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), raw...), nil
}

func (c *MemoryResponseCache) Len() int {
	return c.store.Len()
}

// Close stops the sweeper.
func (c *MemoryResponseCache) Close() error {
	c.store.Close()
	return nil
}
