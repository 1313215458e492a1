package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/database/mongoclient"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/run"
	"github.com/x-xyz/rarity/service/query"
)

type historyRepo struct {
	q query.Mongo
}

func NewHistoryRepo(q query.Mongo) run.HistoryRepo {
	return &historyRepo{q: q}
}

// EnsureIndexes creates the unique run id index
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndex(c, domain.TableRuns, bson.D{{Key: "runId", Value: 1}}, true)
}

func (r *historyRepo) Upsert(c ctx.Ctx, runId string, patch *run.HistoryPatch) error {
	updater, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if len(updater) == 0 {
		return nil
	}
	if err := r.q.Patch(c, domain.TableRuns, bson.M{"runId": runId}, updater, query.WithUpsert(true)); err != nil {
		c.WithFields(log.Fields{
			"runId": runId,
			"err":   err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *historyRepo) FindOne(c ctx.Ctx, runId string) (*run.History, error) {
	res := &run.History{}
	if err := r.q.FindOne(c, domain.TableRuns, bson.M{"runId": runId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"runId": runId,
			"err":   err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}
