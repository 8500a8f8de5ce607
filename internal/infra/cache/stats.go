package cache

import "sync/atomic"

type counters struct {
	hits          atomic.Uint64
	misses        atomic.Uint64
	generations   atomic.Uint64
	shared        atomic.Uint64
	invalidations atomic.Uint64
}

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	Entries       int
	Hits          uint64
	Misses        uint64
	Generations   uint64
	SharedWaits   uint64
	Invalidations uint64
}

func (c *Cache) Stats() Stats {
	return Stats{
		Entries:       c.Len(),
		Hits:          c.stats.hits.Load(),
		Misses:        c.stats.misses.Load(),
		Generations:   c.stats.generations.Load(),
		SharedWaits:   c.stats.shared.Load(),
		Invalidations: c.stats.invalidations.Load(),
	}
}
