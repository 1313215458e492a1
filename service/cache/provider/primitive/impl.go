package primitive

import (
	"strconv"
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process provider of size megabytes
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, 0, err
	}
	return val, remaining(expireAt), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error) {
	v, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return 0, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.GetWithExpiration failed")
		return 0, 0, err
	}

	i, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("strconv.ParseInt failed")
		return 0, 0, err
	}

	nv := i + int64(val)
	ttl := remaining(expireAt)
	if expireAt != 0 && ttl < time.Second {
		// freecache reads a zero ttl as no expiry
		ttl = time.Second
	}
	return nv, ttl, im.Set(c, key, []byte(strconv.FormatInt(nv, 10)), ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

// remaining converts freecache's absolute expiry (unix seconds, 0 for none) to a ttl
func remaining(expireAt uint32) time.Duration {
	if expireAt == 0 {
		return 0
	}
	left := int64(expireAt) - time.Now().Unix()
	if left < 0 {
		return 0
	}
	return time.Duration(left) * time.Second
}
