package ttlstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ruleta-server/internal/infra"
	"ruleta-server/internal/pkg/clock"
)

// Store keeps named entries with optional time-to-live on top of a Medium.
// Expired entries are evicted when read (lazy eviction); Sweep evicts the
// rest. Get never fails: misses, expired and undecodable entries all look
// absent. Lookup additionally surfaces medium read failures. Writes surface a
// StoreError of kind KindStorageWrite.
type Store struct {
	medium    Medium
	namespace string
	clock     clock.Clock
	logger    *slog.Logger
}

func New(medium Medium, namespace string, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		medium:    medium,
		namespace: namespace,
		clock:     clk,
		logger:    logger,
	}
}

func (s *Store) Namespace() string {
	return s.namespace
}

// Set overwrites key. ttl <= 0 stores the entry without expiry.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to encode value", err, slog.String("key", key))
	}

	payload, err := json.Marshal(newEnvelope(raw, s.clock.Now(), ttl))
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to encode entry", err, slog.String("key", key))
	}

	if err := s.medium.Write(ctx, s.physical(key), payload); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to write entry", err,
			slog.String("key", key), slog.Int("bytes", len(payload)))
	}
	return nil
}

// Get decodes the live value of key into dst. dst may be nil to only test presence.
func (s *Store) Get(ctx context.Context, key string, dst any) bool {
	env, ok := s.load(ctx, key)
	if !ok {
		return false
	}
	if dst == nil {
		return true
	}
	if err := json.Unmarshal(env.Value, dst); err != nil {
		_ = infra.WrapStoreErr(s.logger, infra.KindDeserialization, "failed to decode value", err, slog.String("key", key))
		return false
	}
	return true
}

// Lookup is Get for read-modify-write callers: a medium read failure is
// returned as a StoreError of kind KindStorageRead instead of a miss.
func (s *Store) Lookup(ctx context.Context, key string, dst any) (bool, error) {
	env, ok, err := s.loadEnvelope(ctx, key)
	if err != nil {
		return false, infra.WrapStoreErr(s.logger, infra.KindStorageRead, "failed to read entry", err, slog.String("key", key))
	}
	if !ok {
		return false, nil
	}
	if dst == nil {
		return true, nil
	}
	if err := json.Unmarshal(env.Value, dst); err != nil {
		_ = infra.WrapStoreErr(s.logger, infra.KindDeserialization, "failed to decode value", err, slog.String("key", key))
		return false, nil
	}
	return true, nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.medium.Delete(ctx, s.physical(key)); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to remove entry", err, slog.String("key", key))
	}
	return nil
}

// Clear removes every key of this namespace that starts with prefix and
// returns how many were removed. An empty prefix clears the namespace.
func (s *Store) Clear(ctx context.Context, prefix string) (int, error) {
	keys, err := s.medium.Keys(ctx, s.physical(prefix))
	if err != nil {
		return 0, infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to list entries", err, slog.String("prefix", prefix))
	}

	removed := 0
	for _, k := range keys {
		if err := s.medium.Delete(ctx, k); err != nil {
			return removed, infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to clear entry", err, slog.String("key", k))
		}
		removed++
	}
	return removed, nil
}

// TimeToExpiry is false for missing and expired keys, and for keys stored without a TTL.
func (s *Store) TimeToExpiry(ctx context.Context, key string) (time.Duration, bool) {
	env, ok := s.load(ctx, key)
	if !ok {
		return 0, false
	}
	return env.remaining(s.clock.Now())
}

// Sweep evicts every expired entry of the namespace.
func (s *Store) Sweep(ctx context.Context) (int, error) {
	keys, err := s.medium.Keys(ctx, s.namespace)
	if err != nil {
		return 0, infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to list entries for sweep", err)
	}

	now := s.clock.Now()
	evicted := 0
	for _, k := range keys {
		payload, err := s.medium.Read(ctx, k)
		if err != nil {
			continue
		}
		var env envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			continue
		}
		if !env.expiredAt(now) {
			continue
		}
		if err := s.medium.Delete(ctx, k); err != nil {
			return evicted, infra.WrapStoreErr(s.logger, infra.KindStorageWrite, "failed to evict entry", err, slog.String("key", k))
		}
		evicted++
	}
	return evicted, nil
}

func (s *Store) load(ctx context.Context, key string) (*envelope, bool) {
	env, ok, err := s.loadEnvelope(ctx, key)
	if err != nil {
		s.logger.Warn("Store read failed, treating as miss", "key", key, "error", err.Error())
		return nil, false
	}
	return env, ok
}

// loadEnvelope only errors for medium failures other than ErrEntryNotFound.
func (s *Store) loadEnvelope(ctx context.Context, key string) (*envelope, bool, error) {
	payload, err := s.medium.Read(ctx, s.physical(key))
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		_ = infra.WrapStoreErr(s.logger, infra.KindDeserialization, "failed to decode entry", err, slog.String("key", key))
		return nil, false, nil
	}

	if env.expiredAt(s.clock.Now()) {
		if err := s.medium.Delete(ctx, s.physical(key)); err != nil {
			s.logger.Warn("Lazy eviction failed", "key", key, "error", err.Error())
		}
		return nil, false, nil
	}
	return &env, true, nil
}

func (s *Store) physical(key string) string {
	return s.namespace + key
}
