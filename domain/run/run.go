package run

import (
	"time"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/artifact"
	"github.com/x-xyz/rarity/domain/rarity"
)

// Request is the validated input of one analysis
type Request struct {
	Cid   string `json:"cid" validate:"required,cid" example:"QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq"`
	Start int64  `json:"start" example:"0"`
	End   int64  `json:"end" example:"99"`
	// Requester is the authorized identity, recorded in history only
	Requester string `json:"-"`
}

// Result summarises a completed analysis
type Result struct {
	RunId     string              `json:"runId"`
	Cid       string              `json:"cid"`
	Start     int64               `json:"start"`
	End       int64               `json:"end"`
	Requested int                 `json:"requested"`
	Fetched   int                 `json:"fetched"`
	Traits    int                 `json:"traits"`
	Top       []*rarity.Record    `json:"top"`
	Artifacts []artifact.Artifact `json:"artifacts"`
}

// Usecase runs the pipeline. Artifacts in the result are local files owned by the caller,
// who hands them to artifact.Usecase.
type Usecase interface {
	Analyze(c ctx.Ctx, req Request, observer domain.ProgressObserver) (*Result, error)
}

type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusEmpty     Status = "empty"
	StatusInvalid   Status = "no_attributes"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// History is the stored record of one run
type History struct {
	RunId      string    `bson:"runId" json:"runId"`
	Cid        string    `bson:"cid" json:"cid"`
	Start      int64     `bson:"start" json:"start"`
	End        int64     `bson:"end" json:"end"`
	Requester  string    `bson:"requester,omitempty" json:"requester,omitempty"`
	Status     Status    `bson:"status" json:"status"`
	Requested  int       `bson:"requested" json:"requested"`
	Fetched    int       `bson:"fetched" json:"fetched"`
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	FinishedAt time.Time `bson:"finishedAt,omitempty" json:"finishedAt,omitempty"`
}

// HistoryPatch updates the set fields of a History
type HistoryPatch struct {
	Cid        *string    `bson:"cid,omitempty"`
	Start      *int64     `bson:"start,omitempty"`
	End        *int64     `bson:"end,omitempty"`
	Requester  *string    `bson:"requester,omitempty"`
	Status     *Status    `bson:"status,omitempty"`
	Requested  *int       `bson:"requested,omitempty"`
	Fetched    *int       `bson:"fetched,omitempty"`
	Error      *string    `bson:"error,omitempty"`
	CreatedAt  *time.Time `bson:"createdAt,omitempty"`
	FinishedAt *time.Time `bson:"finishedAt,omitempty"`
}

type HistoryRepo interface {
	Upsert(c ctx.Ctx, runId string, patch *HistoryPatch) error
	FindOne(c ctx.Ctx, runId string) (*History, error)
}
