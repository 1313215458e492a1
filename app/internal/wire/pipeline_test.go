package wire

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/rarity/base/ctx"
)

func TestSources(t *testing.T) {
	req := require.New(t)
	viper.Reset()
	defer viper.Reset()
	viper.Set("pipeline.timeout", time.Second)
	viper.Set("gateways", []map[string]interface{}{
		{"name": "first", "url": "http://127.0.0.1:1/ipfs"},
		{"name": "second", "url": "http://127.0.0.1:2/ipfs", "rps": 3},
	})
	viper.Set("ipfs.api", "127.0.0.1:5001")

	sources, err := Sources(ctx.Background())
	req.NoError(err)
	req.Len(sources, 3)
	req.Equal("first", sources[0].Name())
	req.Equal("second", sources[1].Name())
	req.Equal("ipfs-node", sources[2].Name())

	u, err := RunUseCase(ctx.Background(), t.TempDir(), nil)
	req.NoError(err)
	req.NotNil(u)
}
