package domain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/x-xyz/rarity/base/ctx"
)

// TokenId identifies a token inside a collection
type TokenId int64

func (id TokenId) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Document is the verbatim JSON body fetched for a token
type Document []byte

// IsEmpty reports documents that carry no metadata: null, {}, [], "", 0 and false.
func (d Document) IsEmpty() bool {
	trimmed := bytes.TrimSpace(d)
	switch string(trimmed) {
	case "", "null", "{}", "[]", `""`, "false":
		return true
	}
	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}
	switch vv := v.(type) {
	case map[string]interface{}:
		return len(vv) == 0
	case []interface{}:
		return len(vv) == 0
	case string:
		return vv == ""
	case float64:
		return vv == 0
	}
	return false
}

// Token is a fetched document with its normalized attributes
type Token struct {
	Id         TokenId
	Document   Document
	Attributes Attributes
}

// MetadataReaderRepository reads the content at a cid path from one source
type MetadataReaderRepository interface {
	Name() string
	Get(c ctx.Ctx, path string) ([]byte, error)
}

// ProgressObserver receives completed/total counts while a range is fetched
type ProgressObserver func(done, total int)

// GatewayFetcher retrieves one token's document, absent when every source failed
type GatewayFetcher interface {
	Fetch(c ctx.Ctx, rc *RunContext, id TokenId) (Document, bool)
}

// FetchCoordinator fetches an inclusive id range with bounded concurrency.
// The only error returned is the context error on cancellation.
type FetchCoordinator interface {
	FetchAll(c ctx.Ctx, rc *RunContext, observer ProgressObserver) (map[TokenId]Document, error)
}

// AttributeParser extracts attributes of one shape from a document
type AttributeParser interface {
	Name() string
	Parse(data Document) (Attributes, error)
}
