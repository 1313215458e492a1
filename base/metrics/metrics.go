/*
Package metrics records service metrics through dogstatsd.
Naming convention:
  - internal process time: *.time
  - external latency: *.latency
  - error: *.err
  - hit/miss counters: *.hit, *.miss
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/rarity/base/env"
	"github.com/x-xyz/rarity/base/log"
)

// Ender stops a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	withPodName bool
}

// WithoutPodName drops the pod tag, for metrics that need no per-pod breakdown
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client prefixing keys with pkgName.
// metrics.disabled mutes it, metrics.sampleRate sets the firing rate.
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	// an empty host tag drops the agent's host tags
	tags := []string{
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if o.withPodName {
		tags = append(tags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		rate:    viper.GetFloat64("metrics.sampleRate"),
		muted:   viper.GetBool("metrics.disabled"),
		sink:    &ddSink{tags: tags},
	}
}

// Metrics prefixes every key with the package name and forwards it to the agent
type Metrics struct {
	pkgName string
	rate    float64
	muted   bool
	sink    *ddSink
}

func (mt *Metrics) sampleRate() float64 {
	if mt.rate <= 0 || mt.rate > 1 {
		return 1.0
	}
	return mt.rate
}

// guard turns a panic while sending into a counter, mostly odd tag lists
func (mt *Metrics) guard(kind, key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{"key": key, "tags": tags, "err": err}).Error("metric panicked")
		mt.sink.count(kind+".panic", 1, 1, []string{"key", mt.pkgName + "." + key + "#" + strings.Join(tags, "#")})
	}
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	if mt.muted {
		return
	}
	defer mt.guard("bumpavg", key, tags)
	mt.sink.gauge(mt.pkgName+"."+key, val, mt.sampleRate(), tags)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if mt.muted {
		return
	}
	defer mt.guard("bumpsum", key, tags)
	mt.sink.count(mt.pkgName+"."+key, val, mt.sampleRate(), tags)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if mt.muted {
		return
	}
	defer mt.guard("bumphistogram", key, tags)
	mt.sink.histogram(mt.pkgName+"."+key, val, mt.sampleRate(), tags)
}

// BumpTime starts a timer reported when End is called:
//
//	defer s.BumpTime("pipeline.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	if mt.muted {
		return noopEnder{}
	}
	return &timer{mt: mt, key: key, tags: tags, start: time.Now()}
}

type noopEnder struct{}

func (noopEnder) End() {}

type timer struct {
	mt    *Metrics
	key   string
	tags  []string
	start time.Time
}

func (t *timer) End() {
	defer t.mt.guard("bumptime", t.key, t.tags)
	t.mt.sink.timing(t.mt.pkgName+"."+t.key, time.Since(t.start), t.mt.sampleRate(), t.tags)
}
