package usecase

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/x-xyz/rarity/domain"
)

const attributesField = "attributes"

type defaultParser struct {
	parsers []domain.AttributeParser
}

// NewDefaultParser reads the attributes field in either of its shapes:
// a list of {trait_type, value} entries or an object of trait_type to value.
func NewDefaultParser() domain.AttributeParser {
	return &defaultParser{
		parsers: []domain.AttributeParser{
			NewAttributeListParser(),
			NewAttributeMapParser(),
		},
	}
}

func (p *defaultParser) Name() string {
	return "Default Parser"
}

func (p *defaultParser) Parse(data domain.Document) (domain.Attributes, error) {
	var (
		attrs domain.Attributes
		err   error
	)
	for _, parser := range p.parsers {
		attrs, err = parser.Parse(data)
		if err == nil {
			return attrs, nil
		}
	}
	return nil, err
}

type attributeListParser struct{}

func NewAttributeListParser() domain.AttributeParser {
	return &attributeListParser{}
}

func (p *attributeListParser) Name() string {
	return "Attribute List Parser"
}

// Parse keeps entries holding both a trait_type and a value key, in document order.
// A null value still counts as a value.
func (p *attributeListParser) Parse(data domain.Document) (domain.Attributes, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrInvalidJsonFormat
	}
	res := gjson.GetBytes(data, attributesField)
	if !res.IsArray() {
		return nil, domain.ErrNotFound
	}
	attrs := domain.Attributes{}
	res.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}
		traitType := entry.Get("trait_type")
		value := entry.Get("value")
		if !traitType.Exists() || !value.Exists() {
			return true
		}
		attrs = append(attrs, domain.Attribute{
			TraitType: traitName(traitType),
			Value:     toValue(value),
		})
		return true
	})
	return attrs, nil
}

type attributeMapParser struct{}

func NewAttributeMapParser() domain.AttributeParser {
	return &attributeMapParser{}
}

func (p *attributeMapParser) Name() string {
	return "Attribute Map Parser"
}

func (p *attributeMapParser) Parse(data domain.Document) (domain.Attributes, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrInvalidJsonFormat
	}
	res := gjson.GetBytes(data, attributesField)
	if !res.IsObject() {
		return nil, domain.ErrNotFound
	}
	attrs := domain.Attributes{}
	res.ForEach(func(key, value gjson.Result) bool {
		attrs = append(attrs, domain.Attribute{
			TraitType: key.String(),
			Value:     toValue(value),
		})
		return true
	})
	return attrs, nil
}

// traitName prefixes non-string trait types with their kind, so 5 and "5" stay apart
func traitName(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return "number:" + r.Raw
	case gjson.True, gjson.False:
		return "bool:" + r.Raw
	case gjson.Null:
		return "null:"
	default:
		return "json:" + compact(r.Raw)
	}
}

func toValue(r gjson.Result) domain.Value {
	switch r.Type {
	case gjson.Null:
		return domain.Value{Kind: domain.ValueNull, Raw: "null"}
	case gjson.True, gjson.False:
		return domain.Value{Kind: domain.ValueBool, Raw: r.Raw}
	case gjson.Number:
		return domain.NumberValue(r.Raw)
	case gjson.String:
		return domain.StringValue(r.Str)
	default:
		return domain.Value{Kind: domain.ValueJson, Raw: compact(r.Raw)}
	}
}

func compact(raw string) string {
	buf := bytes.Buffer{}
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return raw
	}
	return buf.String()
}

// Tokenize normalizes fetched documents, sorted by ascending id.
// Documents without a usable attributes field get no attributes.
func Tokenize(parser domain.AttributeParser, docs map[domain.TokenId]domain.Document) []*domain.Token {
	tokens := make([]*domain.Token, 0, len(docs))
	for id, doc := range docs {
		attrs, err := parser.Parse(doc)
		if err != nil {
			attrs = domain.Attributes{}
		}
		tokens = append(tokens, &domain.Token{Id: id, Document: doc, Attributes: attrs})
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].Id < tokens[j].Id
	})
	return tokens
}
