package metrics

import (
	"github.com/x-xyz/rarity/base/log"
)

// logClient stands in for the agent on local runs and in tests
type logClient struct{}

func (lc *logClient) emit(kind, name string, value interface{}, tags []string) error {
	log.Log().WithFields(log.Fields{"metric": namespace + name, "val": value, "tags": tags}).Debug(kind)
	return nil
}

func (lc *logClient) Gauge(name string, value float64, tags []string, rate float64) error {
	return lc.emit("gauge", name, value, tags)
}

func (lc *logClient) Count(name string, value int64, tags []string, rate float64) error {
	return lc.emit("count", name, value, tags)
}

func (lc *logClient) Histogram(name string, value float64, tags []string, rate float64) error {
	return lc.emit("histogram", name, value, tags)
}

func (lc *logClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return lc.emit("timing", name, value, tags)
}
