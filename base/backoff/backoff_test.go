package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	ctx := context.Background()

	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(4*time.Millisecond, b.NextDuration)

	b.Reset()
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestRetry(t *testing.T) {
	errFailed := errors.New("failed")

	tests := []struct {
		name     string
		failures int
		limit    int
		wantErr  error
		wantRuns int
	}{
		{name: "first attempt", failures: 0, limit: 3, wantRuns: 1},
		{name: "recovers", failures: 2, limit: 3, wantRuns: 3},
		{name: "exhausted", failures: 5, limit: 3, wantErr: errFailed, wantRuns: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			runs := 0
			err := Retry(context.Background(), NewLinear(time.Millisecond, 0), tt.limit, func(int) error {
				runs++
				if runs <= tt.failures {
					return errFailed
				}
				return nil
			})
			req.Equal(tt.wantErr, err)
			req.Equal(tt.wantRuns, runs)
		})
	}
}

func TestRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Retry(ctx, NewExponential(time.Second, 0), 3, func(int) error {
		return errors.New("failed")
	})
	require.ErrorIs(t, err, context.Canceled)
}
