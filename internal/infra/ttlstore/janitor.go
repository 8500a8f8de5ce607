package ttlstore

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Janitor periodically sweeps a Store. Lazy eviction alone already hides
// expired entries; the janitor only reclaims the space they occupy.
type Janitor struct {
	store    *Store
	interval time.Duration
	logger   *slog.Logger

	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewJanitor(store *Store, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{
		store:    store,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start is a no-op when interval <= 0.
func (j *Janitor) Start() {
	if j.interval <= 0 {
		return
	}
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.sweep()
			case <-j.stop:
				return
			}
		}
	}()
}

func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stop)
		j.wg.Wait()
	})
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), j.interval)
	defer cancel()

	evicted, err := j.store.Sweep(ctx)
	if err != nil {
		j.logger.Error("Store sweep failed", "error", err.Error())
		return
	}
	if evicted > 0 {
		j.logger.Debug("Store sweep evicted entries", "namespace", j.store.Namespace(), "evicted", evicted)
	}
}
