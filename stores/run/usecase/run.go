package usecase

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/base/metrics"
	"github.com/x-xyz/rarity/base/ptr"
	bValidator "github.com/x-xyz/rarity/base/validator"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/rarity"
	"github.com/x-xyz/rarity/domain/report"
	"github.com/x-xyz/rarity/domain/run"
	metadataUsecase "github.com/x-xyz/rarity/stores/metadata/usecase"
)

const (
	// DefaultTopN is the number of leading records kept in a result
	DefaultTopN    = 10
	historyTimeout = 5 * time.Second
)

type RunUseCaseCfg struct {
	Sources     []domain.MetadataReaderRepository
	Suffixes    []string
	Coordinator domain.FetchCoordinator
	Parser      domain.AttributeParser
	Index       rarity.Index
	Builder     report.Builder
	// HistoryRepo is optional
	HistoryRepo run.HistoryRepo
	Validator   *validator.Validate
	Metrics     metrics.Service
	OutputDir   string
	// MaxRange limits end-start+1, 0 for domain.MaxRunSize
	MaxRange int64
	TopN     int
}

type impl struct {
	sources     []domain.MetadataReaderRepository
	suffixes    []string
	coordinator domain.FetchCoordinator
	parser      domain.AttributeParser
	index       rarity.Index
	builder     report.Builder
	historyRepo run.HistoryRepo
	validate    *validator.Validate
	met         metrics.Service
	outputDir   string
	maxRange    int64
	topN        int
	now         func() time.Time
}

func NewRunUseCase(cfg *RunUseCaseCfg) run.Usecase {
	im := &impl{
		sources:     cfg.Sources,
		suffixes:    cfg.Suffixes,
		coordinator: cfg.Coordinator,
		parser:      cfg.Parser,
		index:       cfg.Index,
		builder:     cfg.Builder,
		historyRepo: cfg.HistoryRepo,
		validate:    cfg.Validator,
		met:         cfg.Metrics,
		outputDir:   cfg.OutputDir,
		maxRange:    cfg.MaxRange,
		topN:        cfg.TopN,
		now:         time.Now,
	}
	if im.parser == nil {
		im.parser = metadataUsecase.NewDefaultParser()
	}
	if im.validate == nil {
		im.validate = bValidator.New()
	}
	if im.met == nil {
		im.met = metrics.New("pipeline")
	}
	if im.outputDir == "" {
		im.outputDir = os.TempDir()
	}
	if im.topN <= 0 {
		im.topN = DefaultTopN
	}
	return im
}

func (im *impl) check(req run.Request) error {
	if err := im.validate.Struct(req); err != nil {
		return domain.ErrInvalidCid
	}
	limit := uint64(domain.MaxRunSize)
	if im.maxRange > 0 && uint64(im.maxRange) < limit {
		limit = uint64(im.maxRange)
	}
	if domain.RangeSize(domain.TokenId(req.Start), domain.TokenId(req.End)) > limit {
		return domain.ErrRangeTooWide
	}
	return nil
}

// Analyze fetches the range, scores it and writes both artifacts.
// Request errors are returned before any fetch.
func (im *impl) Analyze(c ctx.Ctx, req run.Request, observer domain.ProgressObserver) (*run.Result, error) {
	if err := im.check(req); err != nil {
		return nil, err
	}
	defer im.met.BumpTime("time").End()

	rc := &domain.RunContext{
		RunId:     uuid.NewString(),
		Root:      req.Cid,
		Start:     domain.TokenId(req.Start),
		End:       domain.TokenId(req.End),
		Sources:   im.sources,
		Suffixes:  im.suffixes,
		OutputDir: im.outputDir,
		CreatedAt: im.now(),
	}
	c = ctx.WithValues(c, map[string]interface{}{
		"runId": rc.RunId,
		"cid":   rc.Root,
	})
	c.WithFields(log.Fields{
		"start":     req.Start,
		"end":       req.End,
		"requester": req.Requester,
	}).Info("analysis started")

	im.record(c, rc.RunId, &run.HistoryPatch{
		Cid:       ptr.String(req.Cid),
		Start:     ptr.Int64(req.Start),
		End:       ptr.Int64(req.End),
		Requester: ptr.String(req.Requester),
		Status:    ptr.Of(run.StatusRunning),
		Requested: ptr.Int(rc.Size()),
		CreatedAt: ptr.Time(rc.CreatedAt),
	})

	res, fetched, err := im.analyze(c, rc, req, observer)
	im.finish(c, rc.RunId, res, fetched, err)
	return res, err
}

// analyze also returns the number of fetched documents, -1 when the fetch did not complete
func (im *impl) analyze(c ctx.Ctx, rc *domain.RunContext, req run.Request, observer domain.ProgressObserver) (*run.Result, int, error) {
	docs, err := im.coordinator.FetchAll(c, rc, observer)
	if err != nil {
		return nil, -1, err
	}
	im.met.BumpAvg("tokens", float64(len(docs)))
	if len(docs) == 0 {
		c.WithField("requested", rc.Size()).Warn("no metadata fetched")
		return nil, 0, domain.ErrNoMetadataFetched
	}

	tokens := metadataUsecase.Tokenize(im.parser, docs)
	table, err := im.index.Build(c, tokens)
	if err != nil {
		return nil, len(docs), err
	}

	records, artifacts, err := im.builder.Build(c, rc, tokens, table)
	if err != nil {
		return nil, len(docs), err
	}

	top := records
	if len(top) > im.topN {
		top = top[:im.topN]
	}
	return &run.Result{
		RunId:     rc.RunId,
		Cid:       req.Cid,
		Start:     req.Start,
		End:       req.End,
		Requested: rc.Size(),
		Fetched:   len(docs),
		Traits:    len(table.Traits),
		Top:       top,
		Artifacts: artifacts,
	}, len(docs), nil
}

func (im *impl) finish(c ctx.Ctx, runId string, res *run.Result, fetched int, err error) {
	patch := &run.HistoryPatch{FinishedAt: ptr.Time(im.now())}
	if fetched >= 0 {
		patch.Fetched = ptr.Int(fetched)
	}
	switch {
	case err == nil:
		patch.Status = ptr.Of(run.StatusSucceeded)
		c.WithFields(log.Fields{
			"fetched": res.Fetched,
			"traits":  res.Traits,
		}).Info("analysis completed")
	case errors.Is(err, domain.ErrNoMetadataFetched):
		patch.Status = ptr.Of(run.StatusEmpty)
	case errors.Is(err, domain.ErrNoValidAttributes):
		patch.Status = ptr.Of(run.StatusInvalid)
	case c.Err() != nil && errors.Is(err, c.Err()):
		patch.Status = ptr.Of(run.StatusCancelled)
		c.WithField("err", err).Warn("analysis cancelled")
	default:
		patch.Status = ptr.Of(run.StatusFailed)
		patch.Error = ptr.String(err.Error())
		c.WithField("err", err).Error("analysis failed")
	}
	im.record(c, runId, patch)
}

// record is best effort, a cancelled run is still recorded
func (im *impl) record(c ctx.Ctx, runId string, patch *run.HistoryPatch) {
	if im.historyRepo == nil {
		return
	}
	hc, cancel := ctx.WithTimeout(ctx.Ctx{Context: context.Background(), Logger: c.Logger}, historyTimeout)
	defer cancel()
	if err := im.historyRepo.Upsert(hc, runId, patch); err != nil {
		c.WithField("err", err).Warn("historyRepo.Upsert failed")
	}
}
