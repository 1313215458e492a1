package usecase

import (
	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/rarity"
)

type index struct{}

func NewIndex() rarity.Index {
	return &index{}
}

// Build counts every attribute of every token once per occurrence.
// Tokens are expected in ascending id order, which fixes the trait column order.
// Total is the number of fetched tokens, with or without attributes.
func (i *index) Build(c ctx.Ctx, tokens []*domain.Token) (*rarity.FrequencyTable, error) {
	table := rarity.NewFrequencyTable(len(tokens))
	counted := 0
	for _, token := range tokens {
		for _, attr := range token.Attributes {
			table.Add(attr)
			counted++
		}
	}
	if counted == 0 {
		c.WithField("tokens", len(tokens)).Warn("no valid attributes")
		return nil, domain.ErrNoValidAttributes
	}
	c.WithFields(log.Fields{
		"tokens":     len(tokens),
		"attributes": counted,
		"traits":     len(table.Traits),
	}).Info("frequency table built")
	return table, nil
}
