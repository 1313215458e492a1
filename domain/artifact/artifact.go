package artifact

import (
	"io"
	"time"

	"github.com/x-xyz/rarity/base/ctx"
)

type Kind string

const (
	KindReport  Kind = "report"
	KindArchive Kind = "archive"
)

// Name patterns of local artifact files, used by the janitor
const (
	ReportPattern  = "rarity_report_*.csv"
	ArchivePattern = "nft_metadata_*.zip"
)

// Artifact is a file produced by a run and waiting for delivery
type Artifact struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Path        string `json:"-"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Delivered is an artifact after upload
type Delivered struct {
	Artifact
	Url string `json:"url"`
}

// WriterRepository uploads an object and returns a url to it
type WriterRepository interface {
	Name() string
	Store(c ctx.Ctx, key string, r io.Reader, size int64, contentType string) (string, error)
}

type Usecase interface {
	// HasSink reports whether Deliver can upload
	HasSink() bool
	// Deliver uploads every artifact then removes the local files, whatever the upload outcome
	Deliver(c ctx.Ctx, runId string, artifacts []Artifact) ([]Delivered, error)
	// Release removes local files of artifacts handed off another way
	Release(c ctx.Ctx, artifacts []Artifact) error
	// Sweep removes stale artifact files older than maxAge
	Sweep(c ctx.Ctx, maxAge time.Duration) (int, error)
}
