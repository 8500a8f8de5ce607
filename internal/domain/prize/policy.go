package prize

import (
	"errors"
	"time"
)

var ErrInvalidTTL = errors.New("prize ttl must be positive")

// Policy carries the validity window every prize is judged against.
type Policy struct {
	TTL time.Duration
}

func NewPolicy(ttl time.Duration) (Policy, error) {
	if ttl <= 0 {
		return Policy{}, ErrInvalidTTL
	}
	return Policy{TTL: ttl}, nil
}
