package redis

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/database/redisclient"
	"github.com/x-xyz/rarity/base/metrics"
	"github.com/x-xyz/rarity/domain/keys"
)

var mockCtx = ctx.Background()

type redisSuite struct {
	suite.Suite
	im  Service
	key string
	set string
}

func (s *redisSuite) SetupSuite() {
	uri := os.Getenv("REDIS_URI")
	if testing.Short() || uri == "" {
		s.T().Skip("REDIS_URI not set")
	}
	pool, err := redisclient.ConnectRedis(redisclient.RedisCfg{Uri: uri, Password: os.Getenv("REDIS_PASSWORD")})
	s.Require().NoError(err)
	s.im = New("test", metrics.New("redis"), &Pools{Src: pool})
	s.key = keys.RedisKey(keys.PfxRarity, "test", "counter")
	s.set = keys.RedisKey(keys.PfxRarity, "test", "set")
}

func (s *redisSuite) TearDownTest() {
	s.im.Del(mockCtx, s.key, s.set)
}

func (s *redisSuite) TestPing() {
	s.NoError(s.im.Ping(mockCtx))
}

func (s *redisSuite) TestGetSet() {
	_, err := s.im.Get(mockCtx, s.key)
	s.Equal(ErrNotFound, err)

	s.NoError(s.im.Set(mockCtx, s.key, []byte("5"), time.Minute))
	val, err := s.im.Get(mockCtx, s.key)
	s.NoError(err)
	s.Equal([]byte("5"), val)

	n, err := s.im.Incrby(mockCtx, s.key, 2)
	s.NoError(err)
	s.Equal(int64(7), n)

	ttl, err := s.im.TTL(mockCtx, s.key)
	s.NoError(err)
	s.InDelta(60, ttl, 2)
}

func (s *redisSuite) TestSet() {
	ok, err := s.im.SIsMember(mockCtx, s.set, "alice")
	s.NoError(err)
	s.False(ok)

	s.NoError(s.im.SAdd(mockCtx, s.set, "alice"))
	ok, err = s.im.SIsMember(mockCtx, s.set, "alice")
	s.NoError(err)
	s.True(ok)
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func TestNoPool(t *testing.T) {
	im := New("empty", metrics.New("redis"), &Pools{})
	_, err := im.Get(mockCtx, "rarity:any")
	if err != ErrNoPool {
		t.Fatalf("expected ErrNoPool, got %v", err)
	}
}
