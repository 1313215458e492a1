package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/database/mongoclient"
	"github.com/x-xyz/rarity/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type querySuite struct {
	suite.Suite
	im Mongo
}

type dummy struct {
	Dummy  string `bson:"dummy"`
	Update string `bson:"updatekey,omitempty"`
}

func (q *querySuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if testing.Short() || uri == "" {
		q.T().Skip("MONGO_URI not set")
	}
	client := mongoclient.MustConnectMongoClient(mongoclient.MongoCfg{
		Uri:        uri,
		AuthDBName: "admin",
		DbName:     dbName,
	})
	q.im = New(client)
}

func (q *querySuite) SetupTest() {
	q.im.(*impl).coll(mockTable).Drop(mockCTX)
}

func (q *querySuite) TestInsertFindOne() {
	q.NoError(q.im.Insert(mockCTX, mockTable, dummy{Dummy: "a", Update: "b"}))

	res := &dummy{}
	q.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, res))
	q.Equal(dummy{Dummy: "a", Update: "b"}, *res)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "missing"}, res))
}

func (q *querySuite) TestPatch() {
	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"updatekey": "x"}))
	q.NoError(q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"updatekey": "x"}, WithUpsert(true)))
	q.NoError(q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"updatekey": "y"}))

	res := &dummy{}
	q.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, res))
	q.Equal("y", res.Update)

	n, err := q.im.Count(mockCTX, mockTable, bson.M{})
	q.NoError(err)
	q.Equal(1, n)
}

func (q *querySuite) TestUniqueIndex() {
	q.NoError(q.im.EnsureIndex(mockCTX, mockTable, bson.D{{Key: "dummy", Value: 1}}, true))
	q.NoError(q.im.Insert(mockCTX, mockTable, dummy{Dummy: "a"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{Dummy: "a"}))

	q.NoError(q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(querySuite))
}
