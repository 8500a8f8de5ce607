package ttlstore

import (
	"encoding/json"
	"time"
)

// envelope is the serialized entry. Writes always use expiresIn; expiry is
// the legacy field name and is only read.
type envelope struct {
	Value     json.RawMessage `json:"value"`
	Timestamp int64           `json:"timestamp"`
	ExpiresIn *int64          `json:"expiresIn,omitempty"`
	Expiry    *int64          `json:"expiry,omitempty"`
}

func newEnvelope(value json.RawMessage, now time.Time, ttl time.Duration) envelope {
	env := envelope{Value: value, Timestamp: now.UnixMilli()}
	if ttl > 0 {
		// round up so sub-millisecond TTLs still expire
		ms := int64((ttl + time.Millisecond - 1) / time.Millisecond)
		env.ExpiresIn = &ms
	}
	return env
}

func (e envelope) ttl() (time.Duration, bool) {
	ms := e.ExpiresIn
	if ms == nil {
		ms = e.Expiry
	}
	if ms == nil || *ms <= 0 {
		return 0, false
	}
	return time.Duration(*ms) * time.Millisecond, true
}

func (e envelope) age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-e.Timestamp) * time.Millisecond
}

func (e envelope) expiredAt(now time.Time) bool {
	ttl, ok := e.ttl()
	return ok && e.age(now) >= ttl
}

func (e envelope) remaining(now time.Time) (time.Duration, bool) {
	ttl, ok := e.ttl()
	if !ok {
		return 0, false
	}
	left := ttl - e.age(now)
	if left <= 0 {
		return 0, false
	}
	return left, true
}
