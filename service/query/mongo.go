package query

/*
	Package query wraps the mongo driver collections behind a small interface
	so repositories only deal with tables, selectors and results.
*/

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

type patchOp struct {
	upsert bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithUpsert inserts the selector merged with the update when nothing matches
func WithUpsert(upsert bool) PatchOp {
	return func(o *patchOp) {
		o.upsert = upsert
	}
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne decodes the first match into result, ErrNotFound if none
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Patch $sets the update on the first match.
	// Return ErrNotFound if selector does not match any documents and upsert is off
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// EnsureIndex creates the index if missing
	EnsureIndex(context ctx.Ctx, table domain.Table, keys bson.D, unique bool) error
}
