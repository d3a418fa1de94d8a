// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

// Package ojson implements a fault-tolerant JSON decoder.
//
// Unlike encoding/json, decoding in this package never fails with an error.
// Damaged input is repaired where possible and unreadable pieces are
// skipped. The result reports only whether any value was recovered at all.
// The intended use is input that may be cut short, for example a log line
// truncated by a collector or a streamed response read before it finished.
//
// # Decoding
//
// The Decode and DecodeBytes functions decode one value from the front of
// the input. Input after the first value is ignored.
//
//	v, ok := ojson.Decode(`{"name": "miki", "tags": ["a", "b`)
//	if ok {
//	   fmt.Println(v.JSON()) // {"name":"miki","tags":["a","b"]}
//	}
//
// The second result is false only when the input is not valid UTF-8 or does
// not begin with a recognizable token. In every other case some value is
// returned, however little of the input survived.
//
// # Recovery
//
// The decoder walks an index of the structurally significant offsets of the
// input and repairs damage locally as it goes:
//
//	Damage                    | Recovery
//	------------------------- | ----------------------------------
//	unclosed object or array  | closed at the end of the input
//	unterminated string       | terminated at the end of the input
//	number with a bare "."    | completed with a zero digit
//	broken escape sequence    | repaired, see Unquote
//	anything else             | skipped
//
// Literal matching ignores what follows the literal, so "truest" decodes
// as true, and any token beginning with "n" decodes as null regardless of
// what it spells. Numbers are plain decimals; an
// exponent marker ends the number, so "1e5" decodes as 1. A decoded string
// consisting of exactly a comma and a space is assumed to be an artifact of
// truncation and is dropped.
//
// # Values
//
// Decoded values use the concrete types of the ast subpackage:
//
//	JSON type | Value type
//	--------- | ---------------------
//	null      | ast.Null
//	boolean   | ast.Bool
//	number    | ast.Int or ast.Float
//	string    | ast.String
//	array     | ast.Array
//	object    | ast.Object
//
// A number becomes an ast.Float exactly when it contains a decimal point.
// Object members keep the order in which they appear in the input; a
// duplicate key keeps its first position but takes the last value written.
//
// # Parsers
//
// A Parser carries decoding options and retains its structural index
// between calls, which saves allocation when decoding many inputs:
//
//	var p ojson.Parser
//	p.MaxDepth(64)
//	for _, line := range lines {
//	   if v, ok := p.DecodeBytes(line); ok {
//	      handle(v)
//	   }
//	}
//
// The zero value of Parser is ready to use. A Parser must not be shared
// between goroutines without external locking; the package-level Decode and
// DecodeBytes functions are safe for concurrent use.
//
// With Standardize enabled, input is first rewritten from JWCC (JSON with
// commas and comments) to plain JSON, so commented input decodes cleanly
// when it is intact. Input the rewriter cannot handle is decoded as it
// stands.
package ojson
