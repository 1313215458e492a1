package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain/auth"
)

// IdentityKey is the echo context key of the authenticated identity
const IdentityKey = "identity"

type AuthMiddleware struct {
	auth auth.Usecase
}

func New(auth auth.Usecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth requires a valid bearer token
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if identity, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	} else {
		c.Set(IdentityKey, identity)
		return true, nil
	}
}
