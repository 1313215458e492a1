package report

import (
	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/artifact"
	"github.com/x-xyz/rarity/domain/rarity"
)

// Fixed leading columns of the tabular report
var LeadingColumns = []string{"token_id", "rarity_score", "rarity_rank"}

// Builder scores and ranks tokens, then writes the report and the raw archive into rc.OutputDir
type Builder interface {
	Build(c ctx.Ctx, rc *domain.RunContext, tokens []*domain.Token, table *rarity.FrequencyTable) ([]*rarity.Record, []artifact.Artifact, error)
}
