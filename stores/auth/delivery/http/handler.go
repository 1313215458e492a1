package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/delivery"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/auth"
)

type authHandler struct {
	auth auth.Usecase
}

func New(e *echo.Echo, auth auth.Usecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("", handler.authorize)
}

type authorizeParams struct {
	Identity  string `json:"identity" validate:"required" example:"discord:1234"`
	AccessKey string `json:"accessKey" example:"s3cret"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// authorize
//
//	@Summary		Get access token
//	@Description	Authorize identity with the access key and issue a bearer token. An identity already authorized only gets a new token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.authorizeParams	true	"params"
//	@Success		201		{object}	object{data=http.tokenResp}
//	@Failure		400
//	@Failure		401
//	@Failure		429
//	@Failure		500
//	@Router			/auth [post]
func (h *authHandler) authorize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &authorizeParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.auth.Authorize(ctx, p.Identity, p.AccessKey); err != nil && !errors.Is(err, domain.ErrAlreadyAuthorized) {
		ctx.WithField("err", err).Warn("auth.Authorize failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Identity); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tokenResp{Token: tkn})
	}
}
