package domain

import (
	"math"
	"strings"
	"time"
)

// MaxRunSize caps the ids of one run regardless of the configured limit
const MaxRunSize = 1_000_000

// RunContext is created per invocation and dropped once artifacts are handed off
type RunContext struct {
	RunId     string
	Root      string
	Start     TokenId
	End       TokenId
	Sources   []MetadataReaderRepository
	Suffixes  []string
	OutputDir string
	CreatedAt time.Time
}

// RangeSize is the number of ids in [start, end], zero when reversed.
// The full int64 range saturates at math.MaxUint64.
func RangeSize(start, end TokenId) uint64 {
	if end < start {
		return 0
	}
	n := uint64(end) - uint64(start) + 1
	if n == 0 {
		return math.MaxUint64
	}
	return n
}

// Size is RangeSize capped at math.MaxInt
func (rc *RunContext) Size() int {
	n := RangeSize(rc.Start, rc.End)
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// TokenPath is the content path of a token below the collection root
func (rc *RunContext) TokenPath(id TokenId, suffix string) string {
	return strings.Trim(rc.Root, "/") + "/" + id.String() + suffix
}

// ArtifactStamp is embedded in artifact names, e.g. 20240102_150405
func (rc *RunContext) ArtifactStamp() string {
	return rc.CreatedAt.Format("20060102_150405")
}
