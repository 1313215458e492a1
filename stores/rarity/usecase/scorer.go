package usecase

import (
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/rarity"
)

type scorer struct{}

func NewScorer() rarity.Scorer {
	return &scorer{}
}

// Score sums total/frequency at full precision. Attributes absent from the
// table contribute nothing.
func (s *scorer) Score(attrs domain.Attributes, table *rarity.FrequencyTable) float64 {
	score := 0.0
	total := float64(table.Total)
	for _, attr := range attrs {
		freq := table.Frequency(attr)
		if freq == 0 {
			continue
		}
		score += total / float64(freq)
	}
	return score
}
