package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldDoesNotShareBacking(t *testing.T) {
	req := require.New(t)
	base := Log().WithField("runId", "a")
	l1 := base.WithField("tokenId", 1)
	l2 := base.WithField("tokenId", 2)

	req.Equal([]interface{}{"runId", "a", "tokenId", 1}, l1.fields)
	req.Equal([]interface{}{"runId", "a", "tokenId", 2}, l2.fields)
	req.Len(base.fields, 2)
}

func TestInit(t *testing.T) {
	req := require.New(t)
	req.NoError(Init(true))
	Log().WithFields(Fields{"a": 1}).Debug("debug enabled")
	req.NoError(Init(false))
}
