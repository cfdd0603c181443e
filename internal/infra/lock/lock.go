package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrBusy is returned when another holder owns the key.
var ErrBusy = errors.New("lock is held by another request")

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

func PropertyKey(propertyID uint) string {
	return fmt.Sprintf("booking:property:%d", propertyID)
}

// Nop always succeeds. Used when Redis is not configured.
type Nop struct{}

func (Nop) Acquire(context.Context, string, time.Duration) (func(), error) {
	return func() {}, nil
}
