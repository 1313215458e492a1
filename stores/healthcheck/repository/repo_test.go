package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/service/redis/mocks"
)

func TestPingDB(t *testing.T) {
	req := require.New(t)
	r := mocks.NewService(t)
	r.On("Set", mock.Anything, "rarity:healthcheck:testset", []byte("1"), 30*time.Second).Return(nil).Once()
	r.On("Set", mock.Anything, "rarity:healthcheck:testset", []byte("1"), 30*time.Second).Return(errors.New("down")).Once()

	repo := New(nil, r)
	req.NoError(repo.PingDB(ctx.Background()))
	req.Error(repo.PingDB(ctx.Background()))
}

func TestPingDBNothingConfigured(t *testing.T) {
	require.NoError(t, New(nil, nil).PingDB(ctx.Background()))
}
