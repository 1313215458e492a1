package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/rarity/base/log"
)

const (
	mgSocketTimeout  = 60 * time.Second
	mgConnectTimeout = 10 * time.Second
)

// Client wraps mongo.Client with the database it is bound to
type Client struct {
	DbName string
	*mongo.Client
}

// Collection of the bound database
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database(c.DbName).Collection(name)
}

// MongoCfg describes one mongo deployment
type MongoCfg struct {
	Uri        string
	AuthDBName string
	DbName     string
	EnableSSL  bool
	// SetSafe waits for a majority of the replica set on writes
	SetSafe bool
	// PoolSizeMultiplier scales pool size by cpu count
	PoolSizeMultiplier float64
}

// MustConnectMongoClient panics if the connection fails
func MustConnectMongoClient(cfg MongoCfg) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": cfg.Uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient connects and checks the database is reachable
func ConnectMongoClient(cfg MongoCfg) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mgConnectTimeout)
	defer cancel()

	connSetting, err := connstring.Parse(cfg.Uri)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"dbName": cfg.DbName,
			"err":    err,
		}).Error("fail to parse connstring")
		return nil, err
	}

	clientOpts := options.Client()
	clientOpts.ApplyURI(cfg.Uri)
	clientOpts.SetSocketTimeout(mgSocketTimeout)

	// If AuthSource is not set in connstring, set it to AuthDBName
	if connSetting.Username != "" && connSetting.AuthSource == "" && cfg.AuthDBName != "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	if cfg.PoolSizeMultiplier > 0 && len(connSetting.Hosts) > 0 {
		// each host has its own pool
		poolSize := int(float64(runtime.NumCPU()) * cfg.PoolSizeMultiplier)
		poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		clientOpts.SetMinPoolSize(uint64(poolSize / 4))
		clientOpts.SetMaxPoolSize(uint64(poolSize))
		log.Log().WithField("poolSize", poolSize).Info("mongo driver pool size")
	}

	if cfg.EnableSSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}
	if cfg.SetSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	clientOpts.SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     cfg.DbName,
			"err":        err,
		}).Error("fail to connect mongo db")
		return nil, err
	}

	if _, err := client.Database(cfg.DbName).ListCollectionNames(ctx, bson.D{}); err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     cfg.DbName,
			"err":        err,
		}).Error("fail to test mongo db")
		client.Disconnect(context.Background())
		return nil, err
	}

	log.Log().WithFields(log.Fields{
		"mongoHosts": connSetting.Hosts,
		"db":         cfg.DbName,
	}).Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DbName,
	}, nil
}
