package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/ptr"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/run"
	"github.com/x-xyz/rarity/service/query"
	"github.com/x-xyz/rarity/service/query/mocks"
)

var mockCtx = ctx.Background()

func TestUpsert(t *testing.T) {
	req := require.New(t)
	q := mocks.NewMongo(t)
	finished := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	q.On("Patch", mockCtx, domain.TableRuns, bson.M{"runId": "r1"}, bson.M{
		"status":     run.StatusSucceeded,
		"fetched":    3,
		"finishedAt": finished,
	}, mock.Anything).Return(nil).Once()

	err := NewHistoryRepo(q).Upsert(mockCtx, "r1", &run.HistoryPatch{
		Status:     ptr.Of(run.StatusSucceeded),
		Fetched:    ptr.Int(3),
		FinishedAt: ptr.Time(finished),
	})
	req.NoError(err)
}

func TestUpsertEmptyPatch(t *testing.T) {
	q := mocks.NewMongo(t)
	require.NoError(t, NewHistoryRepo(q).Upsert(mockCtx, "r1", &run.HistoryPatch{}))
	q.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFindOne(t *testing.T) {
	req := require.New(t)
	q := mocks.NewMongo(t)

	q.On("FindOne", mockCtx, domain.TableRuns, bson.M{"runId": "r1"}, mock.AnythingOfType("*run.History")).
		Run(func(args mock.Arguments) {
			args.Get(3).(*run.History).Status = run.StatusEmpty
		}).Return(nil).Once()
	q.On("FindOne", mockCtx, domain.TableRuns, bson.M{"runId": "r2"}, mock.Anything).Return(query.ErrNotFound).Once()
	q.On("FindOne", mockCtx, domain.TableRuns, bson.M{"runId": "r3"}, mock.Anything).Return(errors.New("boom")).Once()

	repo := NewHistoryRepo(q)
	h, err := repo.FindOne(mockCtx, "r1")
	req.NoError(err)
	req.Equal(run.StatusEmpty, h.Status)

	_, err = repo.FindOne(mockCtx, "r2")
	req.ErrorIs(err, domain.ErrNotFound)

	_, err = repo.FindOne(mockCtx, "r3")
	req.Error(err)
}
