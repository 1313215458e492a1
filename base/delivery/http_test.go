package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rarity/domain"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidRange, http.StatusBadRequest},
		{xerrors.Errorf("fetch: %w", domain.ErrNoMetadataFetched), http.StatusUnprocessableEntity},
		{domain.ErrNoValidAttributes, http.StatusUnprocessableEntity},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrInvalidAccessKey, http.StatusUnauthorized},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrAlreadyAuthorized, http.StatusConflict},
		{domain.ErrNoArtifactSink, http.StatusNotImplemented},
		{domain.ErrNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ErrorStatus(tt.err, http.StatusInternalServerError), tt.err.Error())
	}
}

func TestMakeJsonResp(t *testing.T) {
	req := require.New(t)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	req.NoError(MakeJsonResp(c, http.StatusInternalServerError, domain.ErrInvalidUsage))
	req.Equal(http.StatusBadRequest, rec.Code)
	req.JSONEq(`{"data":"Usage: /analyze <CID> <start_id> <end_id>","status":"fail"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	req.NoError(MakeJsonResp(c, http.StatusOK, map[string]int{"fetched": 3}))
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"data":{"fetched":3},"status":"success"}`, rec.Body.String())
}
