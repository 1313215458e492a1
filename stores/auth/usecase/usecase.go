package usecase

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/base/metrics"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/auth"
	"github.com/x-xyz/rarity/domain/keys"
	"github.com/x-xyz/rarity/service/cache/provider"
)

const (
	defaultTokenTTL      = 24 * time.Hour
	defaultMaxAttempts   = 5
	defaultAttemptWindow = 10 * time.Minute
)

type AuthUseCaseCfg struct {
	Store     auth.Store
	AccessKey string
	JwtSecret string
	TokenTTL  time.Duration
	// Throttle counts failed attempts per identity, optional
	Throttle      provider.Provider
	MaxAttempts   int
	AttemptWindow time.Duration
	Metrics       metrics.Service
}

type impl struct {
	store         auth.Store
	accessKey     []byte
	jwtSecret     []byte
	tokenTTL      time.Duration
	throttle      provider.Provider
	maxAttempts   int
	attemptWindow time.Duration
	met           metrics.Service
}

func New(cfg *AuthUseCaseCfg) auth.Usecase {
	im := &impl{
		store:         cfg.Store,
		accessKey:     []byte(cfg.AccessKey),
		jwtSecret:     []byte(cfg.JwtSecret),
		tokenTTL:      cfg.TokenTTL,
		throttle:      cfg.Throttle,
		maxAttempts:   cfg.MaxAttempts,
		attemptWindow: cfg.AttemptWindow,
		met:           cfg.Metrics,
	}
	if im.tokenTTL <= 0 {
		im.tokenTTL = defaultTokenTTL
	}
	if im.maxAttempts <= 0 {
		im.maxAttempts = defaultMaxAttempts
	}
	if im.attemptWindow <= 0 {
		im.attemptWindow = defaultAttemptWindow
	}
	if im.met == nil {
		im.met = metrics.New("auth")
	}
	return im
}

func attemptsKey(identity string) string {
	return keys.RedisKey(keys.PfxRarity, keys.PfxAuthAttempts, identity)
}

// Authorize checks in order: already authorized, missing key, throttled, key mismatch.
func (im *impl) Authorize(c ctx.Ctx, identity, key string) error {
	c = ctx.WithValue(c, "identity", identity)

	if ok, err := im.store.IsAuthorized(c, identity); err != nil {
		c.WithField("err", err).Error("store.IsAuthorized failed")
		return err
	} else if ok {
		return domain.ErrAlreadyAuthorized
	}

	if key == "" {
		return domain.ErrAuthUsage
	}

	if im.throttled(c, identity) {
		im.met.BumpSum("denied", 1, "reason", "throttled")
		return domain.ErrTooManyAttempts
	}

	if len(im.accessKey) == 0 || subtle.ConstantTimeCompare([]byte(key), im.accessKey) != 1 {
		im.met.BumpSum("denied", 1, "reason", "key")
		im.countFailure(c, identity)
		c.Info("invalid access key")
		return domain.ErrInvalidAccessKey
	}

	if err := im.store.Grant(c, identity); err != nil {
		c.WithField("err", err).Error("store.Grant failed")
		return err
	}
	if im.throttle != nil {
		im.throttle.Del(c, attemptsKey(identity))
	}
	c.Info("identity authorized")
	return nil
}

func (im *impl) throttled(c ctx.Ctx, identity string) bool {
	if im.throttle == nil {
		return false
	}
	val, _, err := im.throttle.Get(c, attemptsKey(identity))
	if err != nil {
		if err != provider.ErrNotFound {
			c.WithField("err", err).Warn("throttle.Get failed")
		}
		return false
	}
	n, err := strconv.Atoi(string(val))
	return err == nil && n >= im.maxAttempts
}

func (im *impl) countFailure(c ctx.Ctx, identity string) {
	if im.throttle == nil {
		return
	}
	key := attemptsKey(identity)
	n, _, err := im.throttle.Incr(c, key, 1)
	if err == provider.ErrNotFound {
		n, err = 1, im.throttle.Set(c, key, []byte("1"), im.attemptWindow)
	}
	if err != nil {
		c.WithField("err", err).Warn("failed to count auth attempt")
		return
	}
	c.WithField("attempts", n).Debug("auth attempt counted")
}

func (im *impl) IsAuthorized(c ctx.Ctx, identity string) (bool, error) {
	return im.store.IsAuthorized(c, identity)
}

func (im *impl) SignToken(c ctx.Ctx, identity string) (string, error) {
	if ok, err := im.store.IsAuthorized(c, identity); err != nil {
		c.WithFields(log.Fields{
			"identity": identity,
			"err":      err,
		}).Error("store.IsAuthorized failed")
		return "", err
	} else if !ok {
		return "", domain.ErrUnauthorized
	}

	claims := auth.JwtCustomClaims{
		Identity: identity,
		StandardClaims: jwt.StandardClaims{
			Subject:   identity,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(im.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &auth.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*auth.JwtCustomClaims); ok && token.Valid && claims.Identity != "" {
		return claims.Identity, nil
	}
	return "", domain.ErrUnauthorized
}
