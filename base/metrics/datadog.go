package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/rarity/base/log"
)

const (
	// namespace prefixes every metric name sent to the agent
	namespace             = "rarity."
	maxMessagesPerPayload = 16
)

// DdPort is the dogstatsd port of the agent at datadog_host
var DdPort = 8125

var (
	clientOnce sync.Once
	client     statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// sharedClient dials the agent once. Without datadog_host metrics go to the debug log.
func sharedClient() statsCli {
	clientOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			log.Log().Info("datadog_host not set, metrics go to the debug log")
			client = &logClient{}
			return
		}
		addr := fmt.Sprintf("%s:%d", host, DdPort)
		c, err := statsd.New(addr,
			statsd.WithNamespace(namespace),
			statsd.WithMaxMessagesPerPayload(maxMessagesPerPayload),
		)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		log.Log().WithField("addr", addr).Info("connected to datadog agent")
		client = c
	})
	return client
}

// ddSink sends one kind of metric with the service-wide tags appended
type ddSink struct {
	tags []string
}

func (s *ddSink) report(kind, key string, val float64, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "kind": kind}).Error("metric send failed")
	}
}

func (s *ddSink) gauge(key string, val, rate float64, tags []string) {
	s.report("gauge", key, val, sharedClient().Gauge(key, val, s.with(tags), rate))
}

func (s *ddSink) count(key string, val, rate float64, tags []string) {
	s.report("count", key, val, sharedClient().Count(key, int64(val), s.with(tags), rate))
}

func (s *ddSink) histogram(key string, val, rate float64, tags []string) {
	s.report("histogram", key, val, sharedClient().Histogram(key, val, s.with(tags), rate))
}

func (s *ddSink) timing(key string, d time.Duration, rate float64, tags []string) {
	ms := float64(d) / float64(time.Millisecond)
	s.report("timing", key, ms, sharedClient().TimeInMilliseconds(key, ms, s.with(tags), rate))
}

func (s *ddSink) with(tags []string) []string {
	res := make([]string, 0, len(s.tags)+len(tags)/2)
	res = append(res, s.tags...)
	return append(res, parseTag(tags)...)
}

// parseTag turns key, value pairs into datadog key:value tags
func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
