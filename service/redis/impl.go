package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/metrics"
	"github.com/x-xyz/rarity/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis service on top of the pools
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) getConn(command string) (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrNoPool
	}
	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "command", command)
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(c ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn(commandName)
	if err != nil {
		return nil, err
	}

	reply, err := redis.DoContext(conn, c, commandName, args...)

	// release the connection to the pool as soon as the reply is read
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(funcName, key string) []string {
	return []string{"func", funcName, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) Ping(c ctx.Ctx) error {
	_, err := redis.String(r.connDo(c, "PING"))
	return err
}

func (r *redImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(c, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
		_, err := r.connDo(c, "SET", key, val)
		if err != nil {
			c.WithField("err", err).Error("set redis failed")
		}
		return err
	}
	r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	_, err := r.connDo(c, "SET", key, val, "PX", int(expire/time.Millisecond))
	if err != nil {
		c.WithField("err", err).Error("set redis failed")
	}
	return err
}

func (r *redImpl) Del(c ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}

	tags := r.tags("del", ks[0])
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(ks)), tags...)

	affected, err := redis.Int(r.connDo(c, "DEL", redis.Args{}.AddFlat(ks)...))
	if err != nil {
		c.WithField("err", err).Error("DEL redis failed")
		return 0, err
	}
	return affected, nil
}

func (r *redImpl) Exists(c ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", r.tags("exists", key)...).End()
	return redis.Bool(r.connDo(c, "EXISTS", key))
}

func (r *redImpl) Incrby(c ctx.Ctx, key string, val int) (int64, error) {
	defer r.met.BumpTime("time", r.tags("incrby", key)...).End()
	res, err := redis.Int64(r.connDo(c, "INCRBY", key, val))
	if err != nil {
		c.WithField("err", err).Error("INCRBY redis failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) TTL(c ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()
	ttl, err := redis.Int(r.connDo(c, "TTL", key))
	if err != nil {
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) SAdd(c ctx.Ctx, key string, member ...string) error {
	if len(member) == 0 {
		return fmt.Errorf("length of member is 0")
	}

	tags := r.tags("sadd", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(member)), tags...)

	if _, err := r.connDo(c, "SADD", redis.Args{}.Add(key).AddFlat(member)...); err != nil {
		c.WithField("err", err).Error("SAdd redis failed")
		return err
	}
	return nil
}

func (r *redImpl) SIsMember(c ctx.Ctx, key, member string) (bool, error) {
	defer r.met.BumpTime("time", r.tags("sismember", key)...).End()
	ok, err := redis.Bool(r.connDo(c, "SISMEMBER", key, member))
	if err != nil {
		c.WithField("err", err).Error("SIsMember redis failed")
		return false, err
	}
	return ok, nil
}
