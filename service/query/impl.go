package query

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/database/mongoclient"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/base/metrics"
	"github.com/x-xyz/rarity/domain"
)

const (
	queryMaxTime    = 20 * time.Second
	slowLogThreshMs = int64(500)
)

var (
	timeNow = time.Now
)

type impl struct {
	client *mongoclient.Client
	met    metrics.Service
}

// New initializes an impl
func New(client *mongoclient.Client) Mongo {
	return &impl{
		client: client,
		met:    metrics.New("mongo"),
	}
}

func (im *impl) logerr(context ctx.Ctx, table domain.Table, msg string, err error) {
	im.met.BumpSum("err", 1, "table", string(table))
	context.WithFields(log.Fields{"err": err}).Error(msg)
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Collection(string(table))
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	defer slowLog(context, string(table), "insert", nil)()
	context = ctx.WithValue(context, "table", table)

	if _, err := im.coll(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, table, "Insert: InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer slowLog(context, string(table), "findone", query)()
	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	findOneOpts := options.FindOne().SetMaxTime(queryMaxTime)
	if err := im.coll(table).FindOne(context, query, findOneOpts).Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(context, table, "FindOne: FindOne error", err)
		return err
	}
	return nil
}

func (im *impl) Count(context ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	defer slowLog(context, string(table), "count", selector)()
	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	opts := options.Count().SetMaxTime(queryMaxTime)
	count, err := im.coll(table).CountDocuments(context, selector, opts)
	if err != nil {
		im.logerr(context, table, "Count: CountDocuments failed", err)
		return 0, err
	}
	return int(count), nil
}

func (im *impl) Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error {
	defer slowLog(context, string(table), "update", selector)()

	o := &patchOp{}
	for _, opt := range ops {
		opt(o)
	}

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	updateOpts := options.Update().SetUpsert(o.upsert)
	updateRes, err := im.coll(table).UpdateOne(context, selector, bson.M{"$set": update}, updateOpts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, table, "Patch: UpdateOne failed", err)
		return err
	}
	if updateRes.MatchedCount == 0 && updateRes.UpsertedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Remove(context ctx.Ctx, table domain.Table, selector interface{}) error {
	defer slowLog(context, string(table), "remove", selector)()
	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	if deletedRes, err := im.coll(table).DeleteOne(context, selector); err != nil {
		im.logerr(context, table, "Remove: DeleteOne failed", err)
		return err
	} else if deletedRes.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) EnsureIndex(context ctx.Ctx, table domain.Table, keys bson.D, unique bool) error {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(unique),
	}
	if _, err := im.coll(table).Indexes().CreateOne(context, model); err != nil {
		im.logerr(context, table, "EnsureIndex: CreateOne failed", err)
		return err
	}
	return nil
}

func slowLog(context ctx.Ctx, table, action string, query interface{}) func() {
	start := timeNow()

	return func() {
		elapsedMs := time.Since(start).Milliseconds()
		if elapsedMs >= slowLogThreshMs {
			context.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"startTime":  start.Unix(),
				"durationMs": elapsedMs,
				"query":      query,
			}).Warn("mongo slowlog")
		}
	}
}
