// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package ojson

import (
	"unicode/utf8"

	"github.com/tailscale/hujson"

	"github.com/fumito-ito/ojson/ast"
)

// defaultMaxDepth bounds recursion when no explicit limit is configured.
const defaultMaxDepth = 200

// A Parser decodes JSON-shaped text into ast values, tolerating truncated
// and locally malformed input. The zero value is ready to use. A Parser may
// be reused across inputs to amortize the allocation of its structural
// index; it must not be used by multiple goroutines concurrently.
type Parser struct {
	idx      []int
	maxDepth int
	std      bool
}

// MaxDepth sets the maximum nesting depth the parser will materialize.
// Values nested more deeply than the limit are dropped, never an error.
// If n <= 0 the default of 200 is restored.
func (p *Parser) MaxDepth(n int) { p.maxDepth = n }

// Standardize configures the parser to standardize its input from JWCC
// (JSON with commas and comments) to plain JSON before decoding. Input that
// cannot be standardized, for example because it is truncated, is decoded
// as it stands.
func (p *Parser) Standardize(ok bool) { p.std = ok }

// Decode decodes input and reports whether any value could be recovered.
// It returns false only when input is not valid UTF-8, contains no
// recognizable token, or does not begin with one.
func (p *Parser) Decode(input string) (ast.Value, bool) {
	return p.DecodeBytes([]byte(input))
}

// DecodeBytes decodes data and reports whether any value could be
// recovered. The decoded value does not alias data, but data must not be
// modified while DecodeBytes runs.
func (p *Parser) DecodeBytes(data []byte) (ast.Value, bool) {
	if !utf8.Valid(data) {
		return nil, false
	}
	if p.std {
		if std, err := hujson.Standardize(data); err == nil {
			data = std
		}
	}
	p.idx = appendIndex(p.idx[:0], data)
	d := decoder{data: data, idx: p.idx, max: p.maxDepth}
	if d.max <= 0 {
		d.max = defaultMaxDepth
	}
	return d.parseValue(0)
}

// Decode decodes input with a default Parser and reports whether any value
// could be recovered. It is safe for concurrent use.
func Decode(input string) (ast.Value, bool) {
	var p Parser
	return p.Decode(input)
}

// DecodeBytes decodes data with a default Parser and reports whether any
// value could be recovered. It is safe for concurrent use.
func DecodeBytes(data []byte) (ast.Value, bool) {
	var p Parser
	return p.DecodeBytes(data)
}
