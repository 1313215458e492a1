package healthcheck

import (
	"github.com/x-xyz/rarity/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingDB pings every configured backing store, skipping the absent ones
	PingDB(context ctx.Ctx) error
}
