package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDocument_IsEmpty(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{doc: `null`, want: true},
		{doc: `{}`, want: true},
		{doc: ` { } `, want: true},
		{doc: `[]`, want: true},
		{doc: `""`, want: true},
		{doc: `0`, want: true},
		{doc: `0.0`, want: true},
		{doc: `false`, want: true},
		{doc: `true`, want: false},
		{doc: `1`, want: false},
		{doc: `"x"`, want: false},
		{doc: `[1]`, want: false},
		{doc: `{"name":"a"}`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			require.Equal(t, tt.want, Document(tt.doc).IsEmpty())
		})
	}
}

func TestValue_Key(t *testing.T) {
	req := require.New(t)
	req.Equal(NumberValue("1").Key(), NumberValue("1.0").Key())
	req.NotEqual(StringValue("1").Key(), NumberValue("1").Key())
	req.NotEqual(Value{Kind: ValueBool, Raw: "true"}.Key(), StringValue("true").Key())
	req.Equal("z:", Value{Kind: ValueNull, Raw: "null"}.Key())
	req.Equal("j:[1,2]", Value{Kind: ValueJson, Raw: "[1,2]"}.Key())
}

func TestValue_Cell(t *testing.T) {
	req := require.New(t)
	req.Equal("Blue", StringValue("Blue").Cell())
	req.Equal("2.5", NumberValue("2.5").Cell())
	req.Equal("", Value{Kind: ValueNull, Raw: "null"}.Cell())
	req.Equal("False", Value{Kind: ValueBool, Raw: "false"}.Cell())
	req.Equal("True", Value{Kind: ValueBool, Raw: "true"}.Cell())
	req.Equal(`{"x":1}`, Value{Kind: ValueJson, Raw: `{"x":1}`}.Cell())
}

func TestAttributes_Flatten(t *testing.T) {
	attrs := Attributes{
		{TraitType: "Background", Value: StringValue("Blue")},
		{TraitType: "Hat", Value: StringValue("Cap")},
		{TraitType: "Hat", Value: StringValue("Crown")},
	}
	require.Equal(t, map[string]string{"Background": "Blue", "Hat": "Crown"}, attrs.Flatten())
}

func TestRunContext(t *testing.T) {
	req := require.New(t)
	rc := &RunContext{
		Root:      "/QmRoot/",
		Start:     3,
		End:       5,
		CreatedAt: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	req.Equal(3, rc.Size())
	req.Equal("QmRoot/4.json", rc.TokenPath(4, ".json"))
	req.Equal("20240102_150405", rc.ArtifactStamp())

	rc.Start, rc.End = 5, 3
	req.Equal(0, rc.Size())

	rc.Start, rc.End = 0, math.MaxInt64
	req.Equal(math.MaxInt, rc.Size())
}

func TestRangeSize(t *testing.T) {
	tests := []struct {
		desc       string
		start, end TokenId
		want       uint64
	}{
		{desc: "single", start: 7, end: 7, want: 1},
		{desc: "reversed", start: 8, end: 7, want: 0},
		{desc: "negative start", start: -2, end: 2, want: 5},
		{desc: "zero to max", start: 0, end: math.MaxInt64, want: 1 << 63},
		{desc: "minus one to max minus one", start: -1, end: math.MaxInt64 - 1, want: 1 << 63},
		{desc: "full range", start: math.MinInt64, end: math.MaxInt64, want: math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			require.New(t).Equal(tt.want, RangeSize(tt.start, tt.end))
		})
	}
}
