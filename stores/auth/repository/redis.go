package repository

import (
	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain/auth"
	"github.com/x-xyz/rarity/domain/keys"
	"github.com/x-xyz/rarity/service/redis"
)

type redisStore struct {
	redis redis.Service
	key   string
}

// NewRedisStore keeps the authorized identities in one redis set
func NewRedisStore(r redis.Service) auth.Store {
	return &redisStore{
		redis: r,
		key:   keys.RedisKey(keys.PfxRarity, keys.PfxAuthorizedUsers),
	}
}

func (s *redisStore) IsAuthorized(c ctx.Ctx, identity string) (bool, error) {
	ok, err := s.redis.SIsMember(c, s.key, identity)
	if err != nil {
		c.WithFields(log.Fields{
			"identity": identity,
			"err":      err,
		}).Error("redis.SIsMember failed")
		return false, err
	}
	return ok, nil
}

func (s *redisStore) Grant(c ctx.Ctx, identity string) error {
	if err := s.redis.SAdd(c, s.key, identity); err != nil {
		c.WithFields(log.Fields{
			"identity": identity,
			"err":      err,
		}).Error("redis.SAdd failed")
		return err
	}
	return nil
}
