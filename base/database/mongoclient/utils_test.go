package mongoclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rarity/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type patchableRun struct {
		Status     *string    `bson:"status,omitempty"`
		Fetched    *int       `bson:"fetched,omitempty"`
		Error      *string    `bson:"error,omitempty"`
		Requester  string     `bson:"requester"`
		Note       string     `bson:"note"`
		FinishedAt *time.Time `bson:"finishedAt,omitempty"`
		Ignored    string     `bson:"-"`
	}

	finished := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	patchable := &patchableRun{
		Status:     ptr.String(""),
		Fetched:    ptr.Int(10),
		Requester:  "alice",
		FinishedAt: ptr.Time(finished),
		Ignored:    "x",
	}

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"status":     "",
			"fetched":    10,
			"requester":  "alice",
			"finishedAt": finished,
			// nil pointers and empty note are left out
		},
		updater,
	)
}

func TestMakeBsonMNotStruct(t *testing.T) {
	_, err := MakeBsonM(ptr.Int(1))
	assert.ErrorIs(t, err, ErrNotStruct)
}
