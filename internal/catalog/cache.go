package catalog

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/trivium-games/trivium/internal/models"
)

// Cached wraps a Repository with an LRU over filter results. The catalogue
// is static for the process lifetime and the session engine re-runs the same
// filter on every question advance, so repeated queries hit the cache.
type Cached struct {
	inner Repository
	lru   *lru.Cache
}

// NewCached returns a caching wrapper holding up to size filter results.
func NewCached(inner Repository, size int) (*Cached, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, lru: c}, nil
}

// Query answers from the cache when possible, consulting the inner
// repository on a miss. Errors are never cached.
func (c *Cached) Query(f Filter) ([]models.Question, error) {
	key := f.Key()
	if v, ok := c.lru.Get(key); ok {
		return v.([]models.Question), nil
	}
	out, err := c.inner.Query(f)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, out)
	return out, nil
}
