package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/infra/converter"
	"ruleta-server/internal/infra/ttlstore"
	"ruleta-server/internal/pkg/errs"
)

// PrizeRepository persists the whole prize collection as one TTL store entry.
// The entry's TTL is re-applied on every write; it only forgets a collection
// nobody touched for a full TTL. Individual prize expiry is decided by the
// domain from createdAt.
type PrizeRepository struct {
	mu     sync.Mutex
	store  *ttlstore.Store
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

func NewPrizeRepository(store *ttlstore.Store, key string, ttl time.Duration, logger *slog.Logger) *PrizeRepository {
	return &PrizeRepository{
		store:  store,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

// FindAll returns the persisted collection; a missing or unreadable snapshot is empty.
func (r *PrizeRepository) FindAll(ctx context.Context) []*prize.Prize {
	return r.load(ctx)
}

// Mutate runs fn on the current collection and persists what it returns.
// Calls are serialized so concurrent issue/claim/compact never lose updates.
// When fn returns an error, or the current collection cannot be read, nothing
// is written.
func (r *PrizeRepository) Mutate(ctx context.Context, fn func(prizes []*prize.Prize) ([]*prize.Prize, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.lookup(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load prize collection")
	}
	next, err := fn(current)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, r.key, converter.PrizesToRecords(next), r.ttl); err != nil {
		return errs.Wrap(err, "failed to persist prize collection")
	}
	r.logger.Debug("Prize collection persisted", "key", r.key, "count", len(next))
	return nil
}

func (r *PrizeRepository) load(ctx context.Context) []*prize.Prize {
	var records []converter.PrizeRecord
	if !r.store.Get(ctx, r.key, &records) {
		return []*prize.Prize{}
	}
	return converter.PrizesFromRecords(records)
}

func (r *PrizeRepository) lookup(ctx context.Context) ([]*prize.Prize, error) {
	var records []converter.PrizeRecord
	found, err := r.store.Lookup(ctx, r.key, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*prize.Prize{}, nil
	}
	return converter.PrizesFromRecords(records), nil
}
