package repository

import (
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
)

// documents larger than this are not metadata
const maxDocumentSize = 32 << 20

type GatewayReaderRepoCfg struct {
	Name    string
	Client  http.Client
	Gateway string
	Timeout time.Duration
	// Rps limits requests per second toward the gateway, 0 disables the limit
	Rps     float64
	Burst   int
	Headers map[string]string
}

type gatewayReaderRepo struct {
	name       string
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
	limiter    *rate.Limiter
	headers    map[string]string
}

func NewGatewayReaderRepo(cfg *GatewayReaderRepoCfg) domain.MetadataReaderRepository {
	var limiter *rate.Limiter
	if cfg.Rps > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.Rps), burst)
	}
	name := cfg.Name
	if len(name) == 0 {
		name = cfg.Gateway
	}
	return &gatewayReaderRepo{
		name:       name,
		client:     cfg.Client,
		gateway:    strings.TrimSuffix(cfg.Gateway, "/"),
		ctxTimeout: cfg.Timeout,
		limiter:    limiter,
		headers:    cfg.Headers,
	}
}

func (r *gatewayReaderRepo) Name() string {
	return r.name
}

func (r *gatewayReaderRepo) Get(c bCtx.Ctx, path string) ([]byte, error) {
	url := r.gateway + "/" + strings.TrimPrefix(path, "/")
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Debug("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Debug("resp.StatusCode != 200")
		return nil, xerrors.Errorf("%s returned %d: %w", r.name, resp.StatusCode, domain.ErrUnexpectedStatus)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Debug("failed to read body")
		return nil, err
	}
	return body, nil
}
