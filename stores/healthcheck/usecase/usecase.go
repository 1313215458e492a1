package usecase

import (
	"os"

	"golang.org/x/xerrors"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	hcdomain "github.com/x-xyz/rarity/domain/healthcheck"
)

const probePattern = ".healthcheck-*"

type impl struct {
	repo      hcdomain.HealthCheckRepo
	outputDir string
}

// New checks the backing stores, then that runs can write their artifacts
// into outputDir. An empty outputDir skips the second check.
func New(repo hcdomain.HealthCheckRepo, outputDir string) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:      repo,
		outputDir: outputDir,
	}
}

func (im *impl) Check(c ctx.Ctx) error {
	if err := im.repo.PingDB(c); err != nil {
		return err
	}
	if im.outputDir == "" {
		return nil
	}
	f, err := os.CreateTemp(im.outputDir, probePattern)
	if err != nil {
		c.WithField("err", err).Error("output dir not writable")
		return xerrors.Errorf("output dir %s: %w", im.outputDir, err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		c.WithFields(log.Fields{"file": name, "err": err}).Warn("probe cleanup failed")
	}
	return nil
}
