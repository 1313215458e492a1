package usecase

import (
	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/counter"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
)

// DefaultWorkers bounds the number of in-flight fetches
const DefaultWorkers = 32

type FetchCoordinatorCfg struct {
	Fetcher domain.GatewayFetcher
	Workers int
}

type fetchCoordinator struct {
	fetcher domain.GatewayFetcher
	workers int
}

func NewFetchCoordinator(cfg *FetchCoordinatorCfg) domain.FetchCoordinator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &fetchCoordinator{
		fetcher: cfg.Fetcher,
		workers: workers,
	}
}

type fetched struct {
	id  domain.TokenId
	doc domain.Document
	ok  bool
}

// FetchAll runs one fetch per id of [rc.Start, rc.End] on a pool of fixed size.
// A reversed range is zero work. The observer is called from the calling
// goroutine once per completed id.
func (u *fetchCoordinator) FetchAll(c bCtx.Ctx, rc *domain.RunContext, observer domain.ProgressObserver) (map[domain.TokenId]domain.Document, error) {
	docs := map[domain.TokenId]domain.Document{}
	total := rc.Size()
	if total == 0 {
		return docs, nil
	}

	b := goroutines.NewBatch(u.workers, goroutines.WithBatchSize(u.workers))
	defer b.Close()
	go func() {
		defer b.QueueComplete()
		for i := rc.Start; ; i++ {
			id := i
			err := b.QueueWithContext(c, func() (interface{}, error) {
				if err := c.Err(); err != nil {
					return nil, err
				}
				doc, ok := u.fetcher.Fetch(c, rc, id)
				return &fetched{id: id, doc: doc, ok: ok}, nil
			})
			if err != nil || id == rc.End {
				return
			}
		}
	}()

	progress := counter.NewCounter(total)
	for ret := range b.Results() {
		done := progress.Add(1)
		if observer != nil {
			observer(done, total)
		}
		if ret.Error() != nil {
			continue
		}
		if f := ret.Value().(*fetched); f.ok {
			docs[f.id] = f.doc
		}
	}

	if err := c.Err(); err != nil {
		c.WithFields(log.Fields{
			"fetched": len(docs),
			"total":   total,
		}).Warn("fetch cancelled")
		return nil, err
	}
	c.WithFields(log.Fields{
		"fetched": len(docs),
		"total":   total,
	}).Info("fetch completed")
	return docs, nil
}
