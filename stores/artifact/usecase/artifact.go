package usecase

import (
	"os"
	"path"
	"path/filepath"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/rarity/base/backoff"
	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/base/metrics"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/artifact"
)

const (
	DefaultRetryLimit   = 3
	DefaultBackoffStart = 500 * time.Millisecond
	DefaultBackoffLimit = 5 * time.Second
)

type ArtifactUseCaseCfg struct {
	// Writer is the upload sink, nil when artifacts are handed off locally
	Writer       artifact.WriterRepository
	OutputDir    string
	RetryLimit   int
	BackoffStart time.Duration
	BackoffLimit time.Duration
	Metrics      metrics.Service
}

type impl struct {
	writer       artifact.WriterRepository
	outputDir    string
	retryLimit   int
	backoffStart time.Duration
	backoffLimit time.Duration
	met          metrics.Service
	now          func() time.Time
}

func NewArtifactUseCase(cfg *ArtifactUseCaseCfg) artifact.Usecase {
	im := &impl{
		writer:       cfg.Writer,
		outputDir:    cfg.OutputDir,
		retryLimit:   cfg.RetryLimit,
		backoffStart: cfg.BackoffStart,
		backoffLimit: cfg.BackoffLimit,
		met:          cfg.Metrics,
		now:          time.Now,
	}
	if im.outputDir == "" {
		im.outputDir = os.TempDir()
	}
	if im.retryLimit <= 0 {
		im.retryLimit = DefaultRetryLimit
	}
	if im.backoffStart <= 0 {
		im.backoffStart = DefaultBackoffStart
	}
	if im.backoffLimit <= 0 {
		im.backoffLimit = DefaultBackoffLimit
	}
	if im.met == nil {
		im.met = metrics.New("artifact")
	}
	return im
}

func (im *impl) HasSink() bool {
	return im.writer != nil
}

// Deliver uploads under {runId}/{name}. Every artifact is tried even after a failure,
// the first failure is returned with whatever was delivered.
func (im *impl) Deliver(c ctx.Ctx, runId string, artifacts []artifact.Artifact) ([]artifact.Delivered, error) {
	defer im.Release(c, artifacts)

	if im.writer == nil {
		return nil, domain.ErrNoArtifactSink
	}

	var (
		delivered []artifact.Delivered
		firstErr  error
	)
	for _, a := range artifacts {
		url, err := im.upload(c, path.Join(runId, a.Name), a)
		if err != nil {
			im.met.BumpSum("upload.err", 1, "sink", im.writer.Name())
			c.WithFields(log.Fields{
				"artifact": a.Name,
				"sink":     im.writer.Name(),
				"err":      err,
			}).Error("upload failed")
			if firstErr == nil {
				firstErr = xerrors.Errorf("upload %s: %w", a.Name, err)
			}
			continue
		}
		delivered = append(delivered, artifact.Delivered{Artifact: a, Url: url})
	}
	return delivered, firstErr
}

func (im *impl) upload(c ctx.Ctx, key string, a artifact.Artifact) (string, error) {
	var url string
	b := backoff.NewExponential(im.backoffStart, im.backoffLimit)
	err := backoff.Retry(c, b, im.retryLimit, func(attempt int) error {
		f, err := os.Open(a.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		if url, err = im.writer.Store(c, key, f, a.Size, a.ContentType); err != nil {
			c.WithFields(log.Fields{
				"artifact": a.Name,
				"attempt":  attempt,
				"err":      err,
			}).Warn("writer.Store failed")
			return err
		}
		return nil
	})
	return url, err
}

// Release removes the local files. A file already gone is not an error.
func (im *impl) Release(c ctx.Ctx, artifacts []artifact.Artifact) error {
	var firstErr error
	for _, a := range artifacts {
		if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
			c.WithFields(log.Fields{
				"path": a.Path,
				"err":  err,
			}).Error("os.Remove failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Sweep removes artifact files in the output dir last modified more than maxAge ago
func (im *impl) Sweep(c ctx.Ctx, maxAge time.Duration) (int, error) {
	deadline := im.now().Add(-maxAge)
	removed := 0
	for _, pattern := range []string{artifact.ReportPattern, artifact.ArchivePattern} {
		matches, err := filepath.Glob(filepath.Join(im.outputDir, pattern))
		if err != nil {
			return removed, err
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() || !info.ModTime().Before(deadline) {
				continue
			}
			if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
				c.WithFields(log.Fields{
					"path": m,
					"err":  err,
				}).Error("os.Remove failed")
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		c.WithFields(log.Fields{
			"removed": removed,
			"dir":     im.outputDir,
		}).Info("stale artifacts removed")
	}
	return removed, nil
}
