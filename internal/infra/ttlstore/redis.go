package ttlstore

import (
	"context"
	"errors"
	"strings"

	"github.com/go-redis/redis/v8"
)

const scanBatch = 100

// RedisMedium stores payloads as plain Redis strings. Expiry stays with the
// Store's envelope so both media behave identically.
type RedisMedium struct {
	client redis.Cmdable
}

func NewRedisMedium(client redis.Cmdable) *RedisMedium {
	return &RedisMedium{client: client}
}

func (m *RedisMedium) Read(ctx context.Context, key string) ([]byte, error) {
	payload, err := m.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (m *RedisMedium) Write(ctx context.Context, key string, payload []byte) error {
	return m.client.Set(ctx, key, payload, 0).Err()
}

func (m *RedisMedium) Delete(ctx context.Context, key string) error {
	return m.client.Del(ctx, key).Err()
}

func (m *RedisMedium) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := m.client.Scan(ctx, 0, escapeGlob(prefix)+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
