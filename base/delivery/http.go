package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rarity/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorStatus maps domain errors to a http status, fallback is used for anything else
func ErrorStatus(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoMetadataFetched), errors.Is(err, domain.ErrNoValidAttributes):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidAccessKey):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrAlreadyAuthorized):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotImplemented), errors.Is(err, domain.ErrNoArtifactSink):
		return http.StatusNotImplemented
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrorStatus(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
