package redis

import (
	"errors"
	"time"

	"github.com/bayt-xyz/marketapi/base/ctx"
)

// Forever means the key never expires.
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")

	// ErrGapTime is returned when no pool can serve the command
	ErrGapTime = errors.New("redis: no pool available")

	// ErrNoTTL is returned by TTL when the key has no associated expire
	ErrNoTTL = errors.New("redis: key has no ttl")
)

// Service is the redis surface used by caches and event broadcast.
type Service interface {
	Get(context ctx.Ctx, key string) (val []byte, err error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Incr(context ctx.Ctx, key string) (int64, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)

	// Publish sends val to the given channel, returning the number of
	// subscribers that received it.
	Publish(context ctx.Ctx, channel string, val []byte) (int, error)
}
