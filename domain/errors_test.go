package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestParamError(t *testing.T) {
	req := require.New(t)
	req.ErrorIs(ErrInvalidRange, ErrBadParamInput)
	req.ErrorIs(ErrAuthUsage, ErrBadParamInput)
	req.Equal("Start and End IDs must be integers.", ErrInvalidRange.Error())

	wrapped := xerrors.Errorf("parse: %w", ErrInvalidCid)
	req.True(errors.Is(wrapped, ErrInvalidCid))
	req.True(errors.Is(wrapped, ErrBadParamInput))
	req.False(errors.Is(wrapped, ErrInvalidRange))
	req.False(errors.Is(ErrNoMetadataFetched, ErrBadParamInput))
}

func TestIsUserError(t *testing.T) {
	req := require.New(t)
	req.True(IsUserError(ErrAuthUsage))
	req.True(IsUserError(xerrors.Errorf("analyze: %w", ErrNoValidAttributes)))
	req.True(IsUserError(ErrAlreadyAuthorized))
	req.False(IsUserError(errors.New("connection refused")))
	req.False(IsUserError(ErrNoArtifactSink))
	req.False(IsUserError(nil))
}
