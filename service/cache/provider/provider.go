package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/rarity/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Provider is a raw byte cache with ttl. Incr fails with ErrNotFound on missing keys
// and keeps the remaining ttl of existing ones.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error)
	Del(c ctx.Ctx, key string) error
}
