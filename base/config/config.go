package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPath is the config file used when --config is not given
const DefaultPath = "infra/configs/rarity/config.yaml"

// Gateway is one public http gateway, in priority order
type Gateway struct {
	Name  string  `mapstructure:"name"`
	Url   string  `mapstructure:"url"`
	Rps   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

var defaultGateways = []Gateway{
	{Name: "ipfs.io", Url: "https://ipfs.io/ipfs"},
	{Name: "cloudflare", Url: "https://cloudflare-ipfs.com/ipfs"},
	{Name: "pinata", Url: "https://gateway.pinata.cloud/ipfs"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("pipeline.workers", 32)
	v.SetDefault("pipeline.timeout", 5*time.Second)
	v.SetDefault("pipeline.outputDir", os.TempDir())
	v.SetDefault("pipeline.suffixes", []string{"", ".json"})
	v.SetDefault("pipeline.maxRange", 0)
	v.SetDefault("pipeline.topN", 10)
	v.SetDefault("ipfs.timeout", 10*time.Second)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("auth.store", "redis")
	v.SetDefault("auth.tokenTTL", 24*time.Hour)
	v.SetDefault("auth.cacheSize", 1024)
	v.SetDefault("auth.maxAttempts", 5)
	v.SetDefault("auth.attemptWindow", 10*time.Minute)
	v.SetDefault("redis.poolMultiplier", 2)
	v.SetDefault("discord.prefix", "/")
	v.SetDefault("discord.progressInterval", 2*time.Second)
	v.SetDefault("discord.runTimeout", 30*time.Minute)
	v.SetDefault("artifact.sink", "none")
	v.SetDefault("artifact.gcs.timeout", 30*time.Second)
	v.SetDefault("artifact.s3.urlExpiry", 24*time.Hour)
	v.SetDefault("artifact.s3.timeout", 30*time.Second)
	v.SetDefault("artifact.retryLimit", 3)
	v.SetDefault("artifact.backoffStart", 500*time.Millisecond)
	v.SetDefault("artifact.backoffLimit", 5*time.Second)
	v.SetDefault("artifact.janitor.schedule", "@every 10m")
	v.SetDefault("artifact.janitor.maxAge", time.Hour)
}

// Load reads .env when present, then the yaml file at path into the global viper.
// Every key can be overridden from the environment, pipeline.workers as PIPELINE_WORKERS.
// A missing file is not an error, the defaults and the environment still apply.
func Load(path string) error {
	return load(viper.GetViper(), path)
}

func load(v *viper.Viper, path string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path == "" {
		path = DefaultPath
	}
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return nil
		}
		return err
	}
	return nil
}

// Gateways returns the configured gateways, the public defaults when none are set
func Gateways() ([]Gateway, error) {
	return gateways(viper.GetViper())
}

func gateways(v *viper.Viper) ([]Gateway, error) {
	res := []Gateway{}
	if err := v.UnmarshalKey("gateways", &res); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return append([]Gateway{}, defaultGateways...), nil
	}
	return res, nil
}
