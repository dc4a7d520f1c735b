package eval

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/notnil/chess"
)

// Cached memoizes Evaluate behind an LRU cache keyed by position FEN.
// It caches static material scores only, never search results, so it
// cannot change what the search returns.
type Cached struct {
	cache  *lru.Cache[string, int]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCached creates a memoized evaluator holding at most size entries.
func NewCached(size int) (*Cached, error) {
	cache, err := lru.New[string, int](size)
	if err != nil {
		return nil, err
	}
	return &Cached{cache: cache}, nil
}

// Evaluate returns the same score as the package-level Evaluate.
func (c *Cached) Evaluate(pos *chess.Position) int {
	key := pos.String()
	if score, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		return score
	}
	c.misses.Add(1)
	score := Evaluate(pos)
	c.cache.Add(key, score)
	return score
}

// Hits returns the number of cache hits so far.
func (c *Cached) Hits() int64 { return c.hits.Load() }

// Misses returns the number of cache misses so far.
func (c *Cached) Misses() int64 { return c.misses.Load() }
