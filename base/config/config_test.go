package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const testConfig = `
debug: true
pipeline:
  workers: 8
  timeout: 3s
gateways:
  - name: local
    url: http://127.0.0.1:8081/ipfs
    rps: 5
    burst: 2
`

func TestLoad(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	req.NoError(os.WriteFile(path, []byte(testConfig), 0o644))
	t.Setenv("ARTIFACT_SINK", "s3")

	v := viper.New()
	req.NoError(load(v, path))
	req.True(v.GetBool("debug"))
	req.Equal(8, v.GetInt("pipeline.workers"))
	req.Equal(3*time.Second, v.GetDuration("pipeline.timeout"))
	req.Equal([]string{"", ".json"}, v.GetStringSlice("pipeline.suffixes"))
	req.Equal("s3", v.GetString("artifact.sink"))

	gws, err := gateways(v)
	req.NoError(err)
	req.Equal([]Gateway{{Name: "local", Url: "http://127.0.0.1:8081/ipfs", Rps: 5, Burst: 2}}, gws)
}

func TestLoadMissingFile(t *testing.T) {
	req := require.New(t)
	v := viper.New()
	req.NoError(load(v, filepath.Join(t.TempDir(), "absent.yaml")))
	req.Equal(32, v.GetInt("pipeline.workers"))

	gws, err := gateways(v)
	req.NoError(err)
	req.Len(gws, 3)
	req.Equal("ipfs.io", gws[0].Name)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: [unclosed"), 0o644))
	require.Error(t, load(viper.New(), path))
}
