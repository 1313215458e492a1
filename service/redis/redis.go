package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/rarity/base/ctx"
)

// Forever is used as expire to keep a key without ttl
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoPool is returned when the service was built without a pool
	ErrNoPool = errors.New("redis: no connection pool")
)

// Service is the subset of redis commands used by this service
type Service interface {
	Ping(c ctx.Ctx) error

	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, ks ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	Incrby(c ctx.Ctx, key string, val int) (int64, error)
	// TTL returns the remaining seconds, -1 when the key has no expire
	TTL(c ctx.Ctx, key string) (int, error)

	SAdd(c ctx.Ctx, key string, member ...string) error
	SIsMember(c ctx.Ctx, key, member string) (bool, error)
}
