package usecase

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain/artifact"
)

const (
	DefaultJanitorSchedule = "@every 10m"
	DefaultJanitorMaxAge   = time.Hour
)

type JanitorCfg struct {
	Artifact artifact.Usecase
	// Schedule is a cron spec, descriptors like @every are accepted
	Schedule string
	MaxAge   time.Duration
}

// Janitor sweeps stale local artifacts left behind by crashed or abandoned runs
type Janitor struct {
	cron     *cron.Cron
	artifact artifact.Usecase
	maxAge   time.Duration
}

func NewJanitor(cfg *JanitorCfg) (*Janitor, error) {
	schedule := cfg.Schedule
	if schedule == "" {
		schedule = DefaultJanitorSchedule
	}
	j := &Janitor{
		cron:     cron.New(),
		artifact: cfg.Artifact,
		maxAge:   cfg.MaxAge,
	}
	if j.maxAge <= 0 {
		j.maxAge = DefaultJanitorMaxAge
	}
	if _, err := j.cron.AddFunc(schedule, j.sweep); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Janitor) sweep() {
	c := ctx.WithValue(ctx.Background(), "job", "janitor")
	if _, err := j.artifact.Sweep(c, j.maxAge); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("artifact.Sweep failed")
	}
}

func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop waits for a running sweep to finish
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}
