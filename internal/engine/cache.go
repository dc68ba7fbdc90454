package engine

import (
	"sync"
	"time"

	"github.com/tradeforge/signalcore/internal/indicator"
)

// indicatorCache memoizes the indicator set per symbol, keyed by the
// last-bar timestamp and the lookback parameters that shaped the set.
// A new closed bar or a parameter change invalidates the entry, so the
// cache holds at most one entry per symbol.
type indicatorCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	mu      sync.Mutex
	lastBar time.Time
	params  indicator.SetParams
	set     indicator.Set
	valid   bool
}

func newIndicatorCache() *indicatorCache {
	return &indicatorCache{
		entries: make(map[string]*cacheEntry),
	}
}

// get returns the cached set for (symbol, lastBar, params), computing it
// via compute on a miss. The per-symbol entry lock guarantees at most one
// computation in flight per key; concurrent callers for the same symbol
// block and then observe the fresh entry.
func (c *indicatorCache) get(symbol string, lastBar time.Time, params indicator.SetParams, compute func() (indicator.Set, error)) (indicator.Set, error) {
	c.mu.Lock()
	entry, ok := c.entries[symbol]
	if !ok {
		entry = &cacheEntry{}
		c.entries[symbol] = entry
	}
	c.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.valid && entry.lastBar.Equal(lastBar) && entry.params == params {
		return entry.set, nil
	}

	set, err := compute()
	if err != nil {
		entry.valid = false
		return indicator.Set{}, err
	}

	entry.lastBar = lastBar
	entry.params = params
	entry.set = set
	entry.valid = true

	return set, nil
}
