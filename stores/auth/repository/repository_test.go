package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain"
	mAuth "github.com/x-xyz/rarity/domain/auth/mocks"
	"github.com/x-xyz/rarity/service/query"
	qMocks "github.com/x-xyz/rarity/service/query/mocks"
	rMocks "github.com/x-xyz/rarity/service/redis/mocks"
)

var mockCtx = ctx.Background()

func TestRedisStore(t *testing.T) {
	req := require.New(t)
	r := rMocks.NewService(t)
	key := "rarity:auth:users"

	r.On("SIsMember", mockCtx, key, "42").Return(false, nil).Once()
	r.On("SAdd", mockCtx, key, []string{"42"}).Return(nil).Once()
	r.On("SIsMember", mockCtx, key, "43").Return(false, errors.New("conn reset")).Once()

	s := NewRedisStore(r)
	ok, err := s.IsAuthorized(mockCtx, "42")
	req.NoError(err)
	req.False(ok)
	req.NoError(s.Grant(mockCtx, "42"))
	_, err = s.IsAuthorized(mockCtx, "43")
	req.Error(err)
}

func TestMongoStore(t *testing.T) {
	req := require.New(t)
	q := qMocks.NewMongo(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	q.On("Count", mockCtx, domain.TableAuthorizedUsers, bson.M{"identity": "42"}).Return(1, nil).Once()
	q.On("Count", mockCtx, domain.TableAuthorizedUsers, bson.M{"identity": "43"}).Return(0, nil).Once()
	q.On("Insert", mockCtx, domain.TableAuthorizedUsers, &authorizedUser{Identity: "43", GrantedAt: now}).Return(nil).Once()
	q.On("Insert", mockCtx, domain.TableAuthorizedUsers, &authorizedUser{Identity: "42", GrantedAt: now}).Return(query.ErrDuplicateKey).Once()

	s := &mongoStore{q: q, now: func() time.Time { return now }}
	ok, err := s.IsAuthorized(mockCtx, "42")
	req.NoError(err)
	req.True(ok)
	ok, err = s.IsAuthorized(mockCtx, "43")
	req.NoError(err)
	req.False(ok)
	req.NoError(s.Grant(mockCtx, "43"))
	req.NoError(s.Grant(mockCtx, "42"))
}

func TestEnsureIndexes(t *testing.T) {
	q := qMocks.NewMongo(t)
	q.On("EnsureIndex", mockCtx, domain.TableAuthorizedUsers, bson.D{{Key: "identity", Value: 1}}, true).Return(nil).Once()
	require.NoError(t, EnsureIndexes(mockCtx, q))
}

func TestCachedStore(t *testing.T) {
	req := require.New(t)
	inner := mAuth.NewStore(t)
	inner.On("IsAuthorized", mock.Anything, "1").Return(true, nil).Once()
	inner.On("IsAuthorized", mock.Anything, "2").Return(false, nil).Twice()
	inner.On("Grant", mock.Anything, "3").Return(nil).Once()
	inner.On("Grant", mock.Anything, "4").Return(errors.New("down")).Once()
	inner.On("IsAuthorized", mock.Anything, "4").Return(false, nil).Once()

	s, err := NewCachedStore(inner, 8)
	req.NoError(err)

	for i := 0; i < 2; i++ {
		ok, err := s.IsAuthorized(mockCtx, "1")
		req.NoError(err)
		req.True(ok)
		// negative answers are asked again
		ok, err = s.IsAuthorized(mockCtx, "2")
		req.NoError(err)
		req.False(ok)
	}

	req.NoError(s.Grant(mockCtx, "3"))
	ok, err := s.IsAuthorized(mockCtx, "3")
	req.NoError(err)
	req.True(ok)

	req.Error(s.Grant(mockCtx, "4"))
	ok, err = s.IsAuthorized(mockCtx, "4")
	req.NoError(err)
	req.False(ok)
}
