package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/delivery"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/artifact"
	"github.com/x-xyz/rarity/domain/run"
	authMiddleware "github.com/x-xyz/rarity/stores/auth/delivery/http/middleware"
)

type runHandler struct {
	run      run.Usecase
	artifact artifact.Usecase
	history  run.HistoryRepo
}

// New registers the run routes. history may be nil, /runs is then not served.
func New(e *echo.Echo, run run.Usecase, artifact artifact.Usecase, history run.HistoryRepo, am *authMiddleware.AuthMiddleware) {
	handler := &runHandler{
		run:      run,
		artifact: artifact,
		history:  history,
	}
	e.POST("/analyze", handler.analyze, am.Auth())
	if history != nil {
		e.GET("/runs/:runId", handler.getRun, am.Auth())
	}
}

type analyzeResp struct {
	*run.Result
	Delivered []artifact.Delivered `json:"delivered"`
}

// analyze
//
//	@Summary		Analyze a collection
//	@Description	Fetch the metadata of tokens [start, end] under cid, rank them by rarity and upload the report and the raw archive.
//	@Tags			run
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		run.Request	true	"params"
//	@Success		200		{object}	object{data=http.analyzeResp}
//	@Failure		400
//	@Failure		401
//	@Failure		422
//	@Failure		500
//	@Failure		501
//	@Router			/analyze [post]
func (h *runHandler) analyze(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if !h.artifact.HasSink() {
		return delivery.MakeJsonResp(c, http.StatusNotImplemented, domain.ErrNoArtifactSink)
	}

	req := run.Request{}
	if err := c.Bind(&req); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if identity, ok := c.Get(authMiddleware.IdentityKey).(string); ok {
		req.Requester = identity
	}

	res, err := h.run.Analyze(ctx, req, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"cid": req.Cid,
			"err": err,
		}).Warn("run.Analyze failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	delivered, err := h.artifact.Deliver(ctx, res.RunId, res.Artifacts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"runId": res.RunId,
			"err":   err,
		}).Error("artifact.Deliver failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, analyzeResp{Result: res, Delivered: delivered})
}

// getRun
//
//	@Summary	Get a run
//	@Tags		run
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		runId	path		string	true	"run id"
//	@Success	200		{object}	object{data=run.History}
//	@Failure	404
//	@Router		/runs/{runId} [get]
func (h *runHandler) getRun(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.history.FindOne(ctx, c.Param("runId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
