package auth

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/rarity/base/ctx"
)

type JwtCustomClaims struct {
	Identity string `json:"identity"`
	jwt.StandardClaims
}

// Store persists the authorized identities
type Store interface {
	IsAuthorized(c ctx.Ctx, identity string) (bool, error)
	Grant(c ctx.Ctx, identity string) error
}

type Usecase interface {
	// Authorize grants identity when key matches the configured access key
	Authorize(c ctx.Ctx, identity, key string) error
	IsAuthorized(c ctx.Ctx, identity string) (bool, error)
	// SignToken issues an api token for an authorized identity
	SignToken(c ctx.Ctx, identity string) (string, error)
	ParseToken(c ctx.Ctx, token string) (identity string, err error)
}
