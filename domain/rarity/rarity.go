package rarity

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/domain"
)

// ScorePlaces is the number of decimal digits kept in a reported score
const ScorePlaces = 4

// FrequencyTable counts (trait_type, value) occurrences over one run.
// Counts are keyed by trait type and then by domain.Value.Key.
type FrequencyTable struct {
	Total  int
	Counts map[string]map[string]int
	// Traits lists trait types by first appearance, scanning tokens by ascending id
	Traits []string
}

func NewFrequencyTable(total int) *FrequencyTable {
	return &FrequencyTable{
		Total:  total,
		Counts: map[string]map[string]int{},
	}
}

func (t *FrequencyTable) Add(attr domain.Attribute) {
	values, ok := t.Counts[attr.TraitType]
	if !ok {
		values = map[string]int{}
		t.Counts[attr.TraitType] = values
		t.Traits = append(t.Traits, attr.TraitType)
	}
	values[attr.Value.Key()]++
}

func (t *FrequencyTable) Frequency(attr domain.Attribute) int {
	return t.Counts[attr.TraitType][attr.Value.Key()]
}

// ScoreCell renders a score with at least one decimal place, e.g. 6.0 and 1.0063
func ScoreCell(score decimal.Decimal) string {
	if score.Equal(score.Truncate(0)) {
		return score.StringFixed(1)
	}
	return score.String()
}

// Record is one report row
type Record struct {
	TokenId domain.TokenId    `json:"tokenId"`
	Score   decimal.Decimal   `json:"score"`
	Rank    int               `json:"rank"`
	Traits  map[string]string `json:"traits"`
}

// Index builds the frequency table of a run
type Index interface {
	Build(c ctx.Ctx, tokens []*domain.Token) (*FrequencyTable, error)
}

// Scorer sums total/frequency over a token's attributes, unrounded
type Scorer interface {
	Score(attrs domain.Attributes, table *FrequencyTable) float64
}
