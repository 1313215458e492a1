package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/rarity/base/ctx"
)

type stubCheck struct {
	err error
}

func (s *stubCheck) Check(ctx.Ctx) error {
	return s.err
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	req := require.New(t)
	check := &stubCheck{}
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, check)

	rec := serve(e, "/")
	req.Equal(http.StatusOK, rec.Code)
	req.Equal(RootMessage, rec.Body.String())

	rec = serve(e, "/health")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"healthy":"ok"}`, rec.Body.String())

	check.err = errors.New("mongo down")
	rec = serve(e, "/health")
	req.Equal(http.StatusInternalServerError, rec.Code)
	req.JSONEq(`{"message":"mongo down"}`, rec.Body.String())
}
