package usecase

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/mocks"
	"github.com/x-xyz/rarity/domain/run"
	mRun "github.com/x-xyz/rarity/domain/run/mocks"
	rarityUsecase "github.com/x-xyz/rarity/stores/rarity/usecase"
	reportUsecase "github.com/x-xyz/rarity/stores/report/usecase"
)

const testCid = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

var mockCtx = ctx.Background()

type RunTestSuite struct {
	suite.Suite
	coordinator *mocks.FetchCoordinator
	history     *mRun.HistoryRepo
	outputDir   string
	im          run.Usecase
}

func (s *RunTestSuite) SetupTest() {
	s.coordinator = mocks.NewFetchCoordinator(s.T())
	s.history = mRun.NewHistoryRepo(s.T())
	s.outputDir = s.T().TempDir()
	s.im = NewRunUseCase(&RunUseCaseCfg{
		Coordinator: s.coordinator,
		Index:       rarityUsecase.NewIndex(),
		Builder:     reportUsecase.NewReportBuilder(&reportUsecase.ReportBuilderCfg{}),
		HistoryRepo: s.history,
		OutputDir:   s.outputDir,
		MaxRange:    1000,
		TopN:        2,
	})
}

func status(st run.Status) interface{} {
	return mock.MatchedBy(func(p *run.HistoryPatch) bool {
		return p.Status != nil && *p.Status == st
	})
}

func finished(st run.Status, fetched int) interface{} {
	return mock.MatchedBy(func(p *run.HistoryPatch) bool {
		return p.Status != nil && *p.Status == st && p.Fetched != nil && *p.Fetched == fetched
	})
}

func (s *RunTestSuite) TestAnalyze() {
	req := s.Require()
	docs := map[domain.TokenId]domain.Document{
		1: domain.Document(`{"attributes":[{"trait_type":"Background","value":"Blue"}]}`),
		2: domain.Document(`{"attributes":[{"trait_type":"Background","value":"Blue"}]}`),
		3: domain.Document(`{"attributes":[{"trait_type":"Background","value":"Red"}]}`),
	}
	s.coordinator.On("FetchAll", mock.Anything, mock.MatchedBy(func(rc *domain.RunContext) bool {
		return rc.Root == testCid && rc.Start == 1 && rc.End == 3 && rc.RunId != ""
	}), mock.Anything).Return(docs, nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, status(run.StatusRunning)).Return(nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, finished(run.StatusSucceeded, 3)).Return(nil).Once()

	res, err := s.im.Analyze(mockCtx, run.Request{Cid: testCid, Start: 1, End: 3, Requester: "alice"}, nil)
	req.NoError(err)
	req.Equal(3, res.Requested)
	req.Equal(3, res.Fetched)
	req.Equal(1, res.Traits)
	req.Len(res.Top, 2)
	req.Equal(domain.TokenId(3), res.Top[0].TokenId)
	req.Equal(1, res.Top[0].Rank)
	req.Equal(2, res.Top[1].Rank)
	req.Len(res.Artifacts, 2)
	for _, a := range res.Artifacts {
		_, err := os.Stat(a.Path)
		req.NoError(err)
	}
}

func (s *RunTestSuite) TestAnalyzeNothingFetched() {
	req := s.Require()
	s.coordinator.On("FetchAll", mock.Anything, mock.Anything, mock.Anything).Return(map[domain.TokenId]domain.Document{}, nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, status(run.StatusRunning)).Return(nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, finished(run.StatusEmpty, 0)).Return(nil).Once()

	res, err := s.im.Analyze(mockCtx, run.Request{Cid: testCid, Start: 5, End: 4}, nil)
	req.ErrorIs(err, domain.ErrNoMetadataFetched)
	req.Nil(res)
	s.assertNoArtifacts()
}

func (s *RunTestSuite) TestAnalyzeNoAttributes() {
	req := s.Require()
	docs := map[domain.TokenId]domain.Document{
		1: domain.Document(`{"name":"plain"}`),
		2: domain.Document(`{"attributes":[{"trait_type":"Eyes"}]}`),
	}
	s.coordinator.On("FetchAll", mock.Anything, mock.Anything, mock.Anything).Return(docs, nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, status(run.StatusRunning)).Return(nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, finished(run.StatusInvalid, 2)).Return(nil).Once()

	_, err := s.im.Analyze(mockCtx, run.Request{Cid: testCid, Start: 1, End: 2}, nil)
	req.ErrorIs(err, domain.ErrNoValidAttributes)
	s.assertNoArtifacts()
}

func (s *RunTestSuite) TestAnalyzeCancelled() {
	req := s.Require()
	c, cancel := ctx.WithCancel(mockCtx)
	cancel()
	s.coordinator.On("FetchAll", mock.Anything, mock.Anything, mock.Anything).Return(nil, context.Canceled).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, status(run.StatusRunning)).Return(nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, mock.MatchedBy(func(p *run.HistoryPatch) bool {
		return p.Status != nil && *p.Status == run.StatusCancelled && p.Fetched == nil
	})).Return(nil).Once()

	_, err := s.im.Analyze(c, run.Request{Cid: testCid, Start: 1, End: 2}, nil)
	req.ErrorIs(err, context.Canceled)
	s.assertNoArtifacts()
}

func (s *RunTestSuite) TestAnalyzeHistoryFailureIgnored() {
	req := s.Require()
	docs := map[domain.TokenId]domain.Document{
		1: domain.Document(`{"attributes":{"Background":"Blue"}}`),
	}
	s.coordinator.On("FetchAll", mock.Anything, mock.Anything, mock.Anything).Return(docs, nil).Once()
	s.history.On("Upsert", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("mongo down")).Twice()

	res, err := s.im.Analyze(mockCtx, run.Request{Cid: testCid, Start: 1, End: 1}, nil)
	req.NoError(err)
	req.Equal(1, res.Fetched)
}

func (s *RunTestSuite) TestAnalyzeRejectsRequest() {
	tests := []struct {
		desc string
		req  run.Request
		err  error
	}{
		{desc: "empty cid", req: run.Request{Start: 1, End: 2}, err: domain.ErrInvalidCid},
		{desc: "bad cid", req: run.Request{Cid: "not-a-cid", Start: 1, End: 2}, err: domain.ErrInvalidCid},
		{desc: "range too wide", req: run.Request{Cid: testCid, Start: 0, End: 1000}, err: domain.ErrRangeTooWide},
	}
	for _, t := range tests {
		_, err := s.im.Analyze(mockCtx, t.req, nil)
		s.ErrorIs(err, t.err, t.desc)
		s.ErrorIs(err, domain.ErrBadParamInput, t.desc)
	}
	s.coordinator.AssertNotCalled(s.T(), "FetchAll", mock.Anything, mock.Anything, mock.Anything)
	s.history.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RunTestSuite) TestAnalyzeRejectsOversizedRangeWithoutLimit() {
	im := NewRunUseCase(&RunUseCaseCfg{
		Coordinator: s.coordinator,
		Index:       rarityUsecase.NewIndex(),
		Builder:     reportUsecase.NewReportBuilder(&reportUsecase.ReportBuilderCfg{}),
		HistoryRepo: s.history,
		OutputDir:   s.outputDir,
	})
	tests := []struct {
		desc       string
		start, end int64
	}{
		{desc: "zero to max", start: 0, end: math.MaxInt64},
		{desc: "minus one to max minus one", start: -1, end: math.MaxInt64 - 1},
		{desc: "full range", start: math.MinInt64, end: math.MaxInt64},
		{desc: "ten billion", start: 0, end: 1e10},
		{desc: "one past the ceiling", start: 1, end: domain.MaxRunSize + 1},
	}
	for _, t := range tests {
		_, err := im.Analyze(mockCtx, run.Request{Cid: testCid, Start: t.start, End: t.end}, nil)
		s.ErrorIs(err, domain.ErrRangeTooWide, t.desc)
	}
	s.coordinator.AssertNotCalled(s.T(), "FetchAll", mock.Anything, mock.Anything, mock.Anything)
	s.history.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RunTestSuite) TestAnalyzeAcceptsRangeAtCeiling() {
	req := s.Require()
	im := NewRunUseCase(&RunUseCaseCfg{
		Coordinator: s.coordinator,
		Index:       rarityUsecase.NewIndex(),
		Builder:     reportUsecase.NewReportBuilder(&reportUsecase.ReportBuilderCfg{}),
		OutputDir:   s.outputDir,
	})
	s.coordinator.On("FetchAll", mock.Anything, mock.MatchedBy(func(rc *domain.RunContext) bool {
		return rc.Size() == domain.MaxRunSize
	}), mock.Anything).Return(map[domain.TokenId]domain.Document{}, nil).Once()

	_, err := im.Analyze(mockCtx, run.Request{Cid: testCid, Start: 1, End: domain.MaxRunSize}, nil)
	req.ErrorIs(err, domain.ErrNoMetadataFetched)
}

func (s *RunTestSuite) assertNoArtifacts() {
	entries, err := os.ReadDir(s.outputDir)
	s.Require().NoError(err)
	s.Empty(entries)
}

func TestRunTestSuite(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}
