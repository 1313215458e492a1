package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/rarity/base/ctx"
)

func TestMiddleware(t *testing.T) {
	req := require.New(t)
	m := InitMiddleware()

	e := echo.New()
	e.Use(echoMiddleware.RequestID())
	e.Use(m.AddContext())
	e.Use(m.ResponseLogger())
	e.Use(m.CORS)
	e.GET("/ping", func(c echo.Context) error {
		cont, ok := c.Get("ctx").(ctx.Ctx)
		req.True(ok)
		req.NotEmpty(cont.Value("requestID"))
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("pong", rec.Body.String())
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	req.Equal(http.StatusNotFound, rec.Code)
}
