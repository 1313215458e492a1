package usecase

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/rarity"
)

// Records scores every token, rounds once and ranks the result.
func Records(tokens []*domain.Token, table *rarity.FrequencyTable, scorer rarity.Scorer) []*rarity.Record {
	records := make([]*rarity.Record, 0, len(tokens))
	for _, token := range tokens {
		score := scorer.Score(token.Attributes, table)
		records = append(records, &rarity.Record{
			TokenId: token.Id,
			Score:   round(score),
			Traits:  token.Attributes.Flatten(),
		})
	}
	Rank(records)
	return records
}

// round rounds the exact binary value half to even
func round(score float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(score, 'f', rarity.ScorePlaces, 64))
}

// Rank sorts records by score descending, token id ascending, and assigns
// minimum competition ranks: tied scores share the position of the first tie.
func Rank(records []*rarity.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if cmp := records[i].Score.Cmp(records[j].Score); cmp != 0 {
			return cmp > 0
		}
		return records[i].TokenId < records[j].TokenId
	})
	for i, r := range records {
		if i > 0 && r.Score.Equal(records[i-1].Score) {
			r.Rank = records[i-1].Rank
			continue
		}
		r.Rank = i + 1
	}
}
