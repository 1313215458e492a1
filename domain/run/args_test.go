package run

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/rarity/domain"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Request
		wantErr error
	}{
		{
			name: "ok",
			args: []string{"QmRoot", "1", "100"},
			want: Request{Cid: "QmRoot", Start: 1, End: 100},
		},
		{
			name: "reversed range is accepted",
			args: []string{"QmRoot", "10", "2"},
			want: Request{Cid: "QmRoot", Start: 10, End: 2},
		},
		{
			name:    "missing end",
			args:    []string{"QmRoot", "1"},
			wantErr: domain.ErrInvalidUsage,
		},
		{
			name:    "too many",
			args:    []string{"QmRoot", "1", "2", "3"},
			wantErr: domain.ErrInvalidUsage,
		},
		{
			name:    "non integer start",
			args:    []string{"QmRoot", "one", "2"},
			wantErr: domain.ErrInvalidRange,
		},
		{
			name:    "float end",
			args:    []string{"QmRoot", "1", "2.5"},
			wantErr: domain.ErrInvalidRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseArgs(tt.args)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				req.ErrorIs(err, domain.ErrBadParamInput)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}
