// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package ojson

import (
	"math"
	"strings"

	"github.com/valyala/fastjson/fastfloat"
	"go4.org/mem"

	"github.com/fumito-ito/ojson/ast"
	"github.com/fumito-ito/ojson/internal/escape"
)

// A decoder materializes values from a buffer and its structural index. The
// cursor cur indexes into idx and never moves backward; each parse consumes
// the offsets of the token it examined, whether or not it produced a value.
type decoder struct {
	data []byte
	idx  []int
	cur  int
	max  int // depth limit
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
)

// parseValue decodes one value at the cursor. When the cursor is exhausted,
// the depth limit is reached, or the byte at the cursor's offset cannot begin
// a value, it reports false without moving the cursor.
func (d *decoder) parseValue(depth int) (ast.Value, bool) {
	if d.cur >= len(d.idx) || depth >= d.max {
		return nil, false
	}
	switch b := d.data[d.idx[d.cur]]; b {
	case '[':
		return d.parseArray(depth), true
	case '{':
		return d.parseObject(depth), true
	case '"':
		if s, ok := d.parseString(); ok {
			return s, true
		}
	case 't', 'f':
		return d.parseBool()
	case 'n':
		return d.parseNull(), true
	default:
		if isNumStart(b) {
			return d.parseNumber()
		}
	}
	return nil, false
}

// parseArray decodes the array whose opening bracket is at the cursor's
// offset. Tokens that do not decode are skipped, and the array is closed
// implicitly when the index runs out before a closing bracket. Arrays never
// fail.
func (d *decoder) parseArray(depth int) ast.Array {
	d.cur++ // consume "["

	vs := ast.Array{}
	for d.cur < len(d.idx) {
		switch d.data[d.idx[d.cur]] {
		case ']':
			d.cur++
			return vs
		case ',':
			d.cur++
		default:
			before := d.cur
			if v, ok := d.parseValue(depth + 1); ok {
				vs = append(vs, v)
			} else if d.cur == before {
				d.cur++ // skip a token that cannot begin a value
			}
		}
	}
	return vs
}

// parseObject decodes the object whose opening brace is at the cursor's
// offset. Malformed members are dropped: a key position holding anything but
// a string is skipped, a key with no following colon loses its value, and a
// member whose value does not decode is omitted. A duplicate key keeps its
// first position and the last value wins. The object is closed implicitly
// when the index runs out before a closing brace. Objects never fail.
func (d *decoder) parseObject(depth int) ast.Object {
	d.cur++ // consume "{"

	ms := ast.Object{}
	for d.cur < len(d.idx) {
		switch d.data[d.idx[d.cur]] {
		case '}':
			d.cur++
			return ms
		case ',':
			d.cur++
		case '"':
			key, ok := d.parseString()
			if !ok {
				continue
			}
			if !d.scanColon() {
				continue // key with no value
			}
			if v, ok := d.parseValue(depth + 1); ok {
				if m := ms.Find(string(key)); m != nil {
					m.Value = v // duplicate key, last write wins
				} else {
					ms = append(ms, &ast.Member{Key: string(key), Value: v})
				}
			}
		default:
			d.cur++ // skip a key position that is not a string
		}
	}
	return ms
}

// scanColon advances the cursor just past the next colon and reports whether
// one was found. It stops without consuming when it reaches a closing brace
// first, so the enclosing object sees its own end.
func (d *decoder) scanColon() bool {
	for d.cur < len(d.idx) {
		switch d.data[d.idx[d.cur]] {
		case ':':
			d.cur++
			return true
		case '}':
			return false
		}
		d.cur++
	}
	return false
}

// parseString decodes the string whose opening quotation mark is at the
// cursor's offset. The cursor consumes both bounding offsets when the
// closing quotation mark exists, and only the opening one when the string
// runs to the end of the buffer, so the cost in structural positions is
// constant regardless of the string's byte length.
func (d *decoder) parseString() (ast.String, bool) {
	open := d.idx[d.cur]
	if d.data[open] != '"' {
		return "", false
	}
	end, closed := stringEnd(d.data, open+1)
	if closed {
		d.cur += 2
	} else {
		d.cur++
	}
	s := string(escape.Unquote(mem.B(d.data[open+1 : end])))
	if s == ", " {
		// A bare comma-space between two recorded quotation marks means the
		// index and the cursor disagree about where strings begin. Drop it.
		return "", false
	}
	return ast.String(s), true
}

// stringEnd scans data from pos for the end of a string whose opening
// quotation mark sits at pos-1. It returns the offset of the closing
// quotation mark and true, or len(data) and false when the string is
// unterminated.
func stringEnd(data []byte, pos int) (end int, closed bool) {
	var escaped bool
	for i := pos; i < len(data); i++ {
		switch {
		case escaped:
			escaped = false
		case data[i] == '\\':
			escaped = true
		case data[i] == '"':
			return i, true
		}
	}
	return len(data), false
}

// parseNumber decodes the numeric literal at the cursor's offset: an
// optional minus sign, then digits with at most one decimal point. A literal
// ending in a bare decimal point is completed with a trailing zero. The
// literal decodes as a Float when a decimal point is present and as an Int
// otherwise; a literal that converts as neither yields no value. The offset
// is consumed either way.
func (d *decoder) parseNumber() (ast.Value, bool) {
	pos := d.idx[d.cur]
	d.cur++

	lit := string(d.data[pos:numberEnd(d.data, pos)])
	if strings.HasSuffix(lit, ".") {
		lit += "0"
	}
	if strings.IndexByte(lit, '.') >= 0 {
		v, err := fastfloat.Parse(lit)
		if err != nil || math.IsInf(v, 0) {
			// Overflowing literals parse as an infinity, which has no JSON
			// rendering. Treat them as conversion failures.
			return nil, false
		}
		return ast.Float(v), true
	}
	v, err := fastfloat.ParseInt64(lit)
	if err != nil {
		return nil, false
	}
	return ast.Int(v), true
}

// parseBool decodes the t/f literal at the cursor's offset by matching the
// next few bytes against the true and false constants. The offset is
// consumed whether or not the literal matches.
func (d *decoder) parseBool() (ast.Value, bool) {
	pos := d.idx[d.cur]
	d.cur++

	window := mem.B(d.data[pos:min(pos+5, len(d.data))])
	if mem.HasPrefix(window, litTrue) {
		return ast.Bool(true), true
	}
	if mem.HasPrefix(window, litFalse) {
		return ast.Bool(false), true
	}
	return nil, false
}

// parseNull consumes the n literal at the cursor's offset. Whatever the
// token spells, the result is null: the index records only where an n token
// begins, and the decoder does not second-guess it.
func (d *decoder) parseNull() ast.Value {
	d.cur++
	return ast.Null{}
}
