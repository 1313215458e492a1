package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/mocks"
)

var errUnreachable = errors.New("unreachable")

func newSource(t *testing.T, name string) *mocks.MetadataReaderRepository {
	src := mocks.NewMetadataReaderRepository(t)
	src.On("Name").Return(name).Maybe()
	return src
}

func Test_gatewayFetcher_Fetch(t *testing.T) {
	doc := []byte(`{"attributes":[{"trait_type":"Background","value":"Blue"}]}`)

	tests := []struct {
		name   string
		setup  func(a, b *mocks.MetadataReaderRepository)
		want   domain.Document
		wantOk bool
	}{
		{
			name: "first source bare id",
			setup: func(a, b *mocks.MetadataReaderRepository) {
				a.On("Get", mock.Anything, "QmRoot/7").Return(doc, nil).Once()
			},
			want:   doc,
			wantOk: true,
		},
		{
			name: "first source json suffix",
			setup: func(a, b *mocks.MetadataReaderRepository) {
				a.On("Get", mock.Anything, "QmRoot/7").Return(nil, errUnreachable).Once()
				a.On("Get", mock.Anything, "QmRoot/7.json").Return(doc, nil).Once()
			},
			want:   doc,
			wantOk: true,
		},
		{
			name: "falls back to second source after invalid json",
			setup: func(a, b *mocks.MetadataReaderRepository) {
				a.On("Get", mock.Anything, "QmRoot/7").Return([]byte("<html>"), nil).Once()
				a.On("Get", mock.Anything, "QmRoot/7.json").Return(nil, errUnreachable).Once()
				b.On("Get", mock.Anything, "QmRoot/7").Return(doc, nil).Once()
			},
			want:   doc,
			wantOk: true,
		},
		{
			name: "every combination fails",
			setup: func(a, b *mocks.MetadataReaderRepository) {
				a.On("Get", mock.Anything, mock.Anything).Return(nil, errUnreachable).Twice()
				b.On("Get", mock.Anything, mock.Anything).Return(nil, errUnreachable).Twice()
			},
			wantOk: false,
		},
		{
			name: "empty document is absent",
			setup: func(a, b *mocks.MetadataReaderRepository) {
				a.On("Get", mock.Anything, "QmRoot/7").Return([]byte(`{}`), nil).Once()
			},
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			a := newSource(t, "a")
			b := newSource(t, "b")
			tt.setup(a, b)

			rc := &domain.RunContext{Root: "QmRoot", Sources: []domain.MetadataReaderRepository{a, b}}
			f := NewGatewayFetcher(&GatewayFetcherCfg{})
			got, ok := f.Fetch(bCtx.Background(), rc, 7)
			req.Equal(tt.wantOk, ok)
			req.Equal(tt.want, got)
		})
	}
}

func Test_gatewayFetcher_FetchCancelled(t *testing.T) {
	req := require.New(t)
	a := newSource(t, "a")
	c, cancel := bCtx.WithCancel(bCtx.Background())
	cancel()

	rc := &domain.RunContext{Root: "QmRoot", Sources: []domain.MetadataReaderRepository{a}}
	got, ok := NewGatewayFetcher(&GatewayFetcherCfg{}).Fetch(c, rc, 1)
	req.False(ok)
	req.Nil(got)
	a.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
