package ttlstore

import (
	"context"
	"errors"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Medium is the physical key/value backend behind a Store. It knows nothing
// about namespaces or expiry; keys arrive fully qualified.
type Medium interface {
	// Read returns ErrEntryNotFound when key is absent.
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, payload []byte) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
