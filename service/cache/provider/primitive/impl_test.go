package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/service/cache/provider"
)

const attemptsKey = "rarity:auth:attempts:discord:42"

func newProvider() *impl {
	return NewPrimitive("test", 1).(*impl)
}

func TestAttemptCounter(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := newProvider()

	_, _, err := p.Incr(c, attemptsKey, 1)
	req.ErrorIs(err, provider.ErrNotFound, "first failure finds no counter")

	req.NoError(p.Set(c, attemptsKey, []byte("1"), time.Minute))
	for want := int64(2); want <= 4; want++ {
		n, ttl, err := p.Incr(c, attemptsKey, 1)
		req.NoError(err)
		req.Equal(want, n)
		req.InDelta(time.Minute.Seconds(), ttl.Seconds(), 2, "window is not extended")
	}

	val, _, err := p.Get(c, attemptsKey)
	req.NoError(err)
	req.Equal("4", string(val))

	req.NoError(p.Del(c, attemptsKey))
	_, _, err = p.Get(c, attemptsKey)
	req.ErrorIs(err, provider.ErrNotFound)
}

func TestWindowExpires(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := newProvider()

	req.NoError(p.Set(c, attemptsKey, []byte("3"), time.Second))
	time.Sleep(2 * time.Second)
	_, _, err := p.Get(c, attemptsKey)
	req.ErrorIs(err, provider.ErrNotFound)
	_, _, err = p.Incr(c, attemptsKey, 1)
	req.ErrorIs(err, provider.ErrNotFound)
}

func TestNoExpiry(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := newProvider()

	req.NoError(p.Set(c, "forever", []byte("1"), 0))
	_, ttl, err := p.Get(c, "forever")
	req.NoError(err)
	req.Zero(ttl)

	n, ttl, err := p.Incr(c, "forever", 5)
	req.NoError(err)
	req.Equal(int64(6), n)
	req.Zero(ttl)
}

func TestIncrNonNumeric(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := newProvider()

	req.NoError(p.Set(c, attemptsKey, []byte("many"), time.Minute))
	_, _, err := p.Incr(c, attemptsKey, 1)
	req.Error(err)
}

func TestRemaining(t *testing.T) {
	req := require.New(t)
	req.Zero(remaining(0))
	req.Zero(remaining(uint32(time.Now().Add(-time.Minute).Unix())))
	req.InDelta(30, remaining(uint32(time.Now().Add(30*time.Second).Unix())).Seconds(), 1)
}
