package store

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/valuin/domikado/pkg/province"
)

const listKey = "provinces:all"

// Cached memoizes List and Get results of another store for a TTL.
type Cached struct {
	next  Store
	cache *cache.Cache
}

// NewCached wraps next with a cache whose entries expire after ttl.
func NewCached(next Store, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: cache.New(ttl, 2*ttl)}
}

// CacheKey joins a prefix and parameters into a cache key.
func CacheKey(prefix string, params ...any) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}

func (c *Cached) List(ctx context.Context) ([]*province.Statistics, error) {
	if v, ok := c.cache.Get(listKey); ok {
		return v.([]*province.Statistics), nil
	}
	out, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(listKey, out)
	return out, nil
}

func (c *Cached) Get(ctx context.Context, key string) (*province.Statistics, error) {
	ck := CacheKey("province", normalizeKey(key))
	if v, ok := c.cache.Get(ck); ok {
		log.Debug().Str("key", ck).Msg("cache hit")
		return v.(*province.Statistics), nil
	}
	s, err := c.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(ck, s)
	return s, nil
}

// Put writes through to the wrapped store and drops cached entries.
func (c *Cached) Put(ctx context.Context, s *province.Statistics) error {
	w, ok := c.next.(Writer)
	if !ok {
		return errReadOnly
	}
	if err := w.Put(ctx, s); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

func (c *Cached) Close() error {
	c.cache.Flush()
	return c.next.Close()
}
