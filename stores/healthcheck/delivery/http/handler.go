package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rarity/base/ctx"
	hcdomain "github.com/x-xyz/rarity/domain/healthcheck"
)

// RootMessage answers the liveness probe on /
const RootMessage = "NFT Bot is running!"

// ResponseError represent the reseponse error struct
type ResponseError struct {
	Message string `json:"message"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/", handler.alive)
	g := e.Group("/health")
	g.GET("", handler.check)
}

// alive
//
//	@Summary	Liveness
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/ [get]
func (h *healthCheckHandler) alive(c echo.Context) error {
	return c.String(http.StatusOK, RootMessage)
}

// check
//
//	@Summary	Readiness, pings the configured stores
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	object{healthy=string}
//	@Failure	500	{object}	http.ResponseError
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
