package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/database/mongoclient"
	hcdomain "github.com/x-xyz/rarity/domain/healthcheck"
	"github.com/x-xyz/rarity/domain/keys"
	"github.com/x-xyz/rarity/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

// New creates the repo. Either store may be nil when it is not configured.
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if im.mgoClient != nil {
		if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
			context.WithField("err", err).Error("ping mongo error")
			return err
		}
	}

	if im.redisCache != nil {
		if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxRarity, keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
			context.WithField("err", err).Error("test redis set failed")
			return err
		}
	}
	return nil
}
