package redisclient

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/rarity/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	retryCount = 3
)

// RedisCfg describes one redis endpoint
type RedisCfg struct {
	Uri      string
	Password string
	// PoolMultiplier scales pool size by cpu count, 0 keeps the defaults
	PoolMultiplier float64
	// Retry dials up to retryCount more times with jitter
	Retry bool
}

// MustConnectRedis panics if the connection fails
func MustConnectRedis(cfg RedisCfg) *redis.Pool {
	p, err := ConnectRedis(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.Uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool and checks one connection out of it
func ConnectRedis(cfg RedisCfg) (*redis.Pool, error) {
	maxIdle := 16
	maxActive := 64
	if cfg.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu*cfg.PoolMultiplier/4) + 1
		maxActive = int(cpu*cfg.PoolMultiplier) + 1
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.Uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var dialErr error
	for i := 0; i <= retryCount; i++ {
		if i > 0 {
			if !cfg.Retry {
				break
			}
			time.Sleep(time.Second + time.Duration(r.Float32()*1000)*time.Millisecond)
		}
		if dialErr = ping(p); dialErr == nil {
			break
		}
		log.Log().WithFields(log.Fields{
			"redisURI": cfg.Uri,
			"err":      dialErr,
			"attempt":  i,
		}).Warn("fail to dial Redis")
	}
	if dialErr != nil {
		log.Log().WithFields(log.Fields{
			"redisURI": cfg.Uri,
			"err":      dialErr,
		}).Error("fail to dial Redis")
		p.Close()
		return nil, dialErr
	}

	log.Log().WithField("redisURI", cfg.Uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}
