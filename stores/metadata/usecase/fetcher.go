package usecase

import (
	"encoding/json"

	bCtx "github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/base/metrics"
	"github.com/x-xyz/rarity/domain"
)

// DefaultSuffixes are tried in order for every source: the bare id, then id.json
var DefaultSuffixes = []string{"", ".json"}

type GatewayFetcherCfg struct {
	Metrics metrics.Service
}

type gatewayFetcher struct {
	met metrics.Service
}

func NewGatewayFetcher(cfg *GatewayFetcherCfg) domain.GatewayFetcher {
	met := cfg.Metrics
	if met == nil {
		met = metrics.New("fetch")
	}
	return &gatewayFetcher{met: met}
}

// Fetch walks sources in priority order and suffixes in order for each source.
// The first response that is valid JSON ends the walk. Failed attempts are only logged.
func (f *gatewayFetcher) Fetch(c bCtx.Ctx, rc *domain.RunContext, id domain.TokenId) (domain.Document, bool) {
	suffixes := rc.Suffixes
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	for _, src := range rc.Sources {
		for _, suffix := range suffixes {
			if c.Err() != nil {
				return nil, false
			}
			path := rc.TokenPath(id, suffix)
			data, err := src.Get(c, path)
			if err == nil && !json.Valid(data) {
				err = domain.ErrInvalidJsonFormat
			}
			if err != nil {
				f.met.BumpSum("attempt.err", 1, "source", src.Name())
				c.WithFields(log.Fields{
					"source": src.Name(),
					"path":   path,
					"err":    err,
				}).Debug("fetch attempt failed")
				continue
			}

			doc := domain.Document(data)
			if doc.IsEmpty() {
				f.met.BumpSum("token.empty", 1, "source", src.Name())
				c.WithFields(log.Fields{
					"source":  src.Name(),
					"tokenId": id,
				}).Info("empty metadata document")
				return nil, false
			}
			f.met.BumpSum("token.hit", 1, "source", src.Name())
			return doc, true
		}
	}
	f.met.BumpSum("token.miss", 1)
	c.WithField("tokenId", id).Info("no metadata from any source")
	return nil, false
}
