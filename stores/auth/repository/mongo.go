package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/auth"
	"github.com/x-xyz/rarity/service/query"
)

type authorizedUser struct {
	Identity  string    `bson:"identity"`
	GrantedAt time.Time `bson:"grantedAt"`
}

type mongoStore struct {
	q   query.Mongo
	now func() time.Time
}

// NewMongoStore keeps one document per authorized identity
func NewMongoStore(q query.Mongo) auth.Store {
	return &mongoStore{q: q, now: time.Now}
}

// EnsureIndexes creates the unique identity index
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndex(c, domain.TableAuthorizedUsers, bson.D{{Key: "identity", Value: 1}}, true)
}

func (s *mongoStore) IsAuthorized(c ctx.Ctx, identity string) (bool, error) {
	n, err := s.q.Count(c, domain.TableAuthorizedUsers, bson.M{"identity": identity})
	if err != nil {
		c.WithFields(log.Fields{
			"identity": identity,
			"err":      err,
		}).Error("q.Count failed")
		return false, err
	}
	return n > 0, nil
}

// Grant is idempotent, a second grant hits the unique index and is ignored
func (s *mongoStore) Grant(c ctx.Ctx, identity string) error {
	err := s.q.Insert(c, domain.TableAuthorizedUsers, &authorizedUser{
		Identity:  identity,
		GrantedAt: s.now().UTC(),
	})
	if err == query.ErrDuplicateKey {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"identity": identity,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
