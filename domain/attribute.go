package domain

import (
	"strconv"
)

type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueNumber
	ValueBool
	ValueJson
)

// Value is an attribute value as found in the document.
// Raw holds the compact JSON text, Str the decoded string for ValueString.
type Value struct {
	Kind ValueKind
	Raw  string
	Str  string
}

func StringValue(s string) Value {
	return Value{Kind: ValueString, Raw: strconv.Quote(s), Str: s}
}

func NumberValue(raw string) Value {
	return Value{Kind: ValueNumber, Raw: raw}
}

// Key is the identity of a value within a trait. Values of different JSON
// types never collide, and numbers compare by numeric value (1 and 1.0 match).
func (v Value) Key() string {
	switch v.Kind {
	case ValueNull:
		return "z:"
	case ValueString:
		return "s:" + v.Str
	case ValueNumber:
		if f, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "n:" + v.Raw
	case ValueBool:
		return "b:" + v.Raw
	default:
		return "j:" + v.Raw
	}
}

// Cell is the text written to the report. Null renders as an empty cell,
// booleans as True and False.
func (v Value) Cell() string {
	switch v.Kind {
	case ValueNull:
		return ""
	case ValueString:
		return v.Str
	case ValueBool:
		if v.Raw == "true" {
			return "True"
		}
		return "False"
	default:
		return v.Raw
	}
}

// Attribute is one (trait_type, value) pair
type Attribute struct {
	TraitType string
	Value     Value
}

// Attributes keeps document order. A trait type may repeat.
type Attributes []Attribute

// Flatten maps each trait type to its cell. The last occurrence of a repeated trait wins.
func (attrs Attributes) Flatten() map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.TraitType] = a.Value.Cell()
	}
	return m
}
