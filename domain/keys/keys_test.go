package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	req := require.New(t)
	req.Equal("rarity:auth:users", RedisKey(PfxRarity, PfxAuthorizedUsers))
	req.Equal("a/b", CacheKey("a", "b"))
}

func TestGetPrefix(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "rarity:auth:users", want: "rarity:auth"},
		{key: "healthcheck:testset", want: "healthcheck"},
		{key: "plain", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.Equal(t, tt.want, GetPrefix(tt.key))
		})
	}
}
