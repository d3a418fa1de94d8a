// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package ast

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
	"go4.org/mem"

	"github.com/fumito-ito/ojson/internal/escape"
)

// jsonString renders v as compact JSON through a pooled buffer.
func jsonString(v Value) string {
	buf := bytebufferpool.Get()
	buf.B = v.appendJSON(buf.B)
	s := buf.String()
	bytebufferpool.Put(buf)
	return s
}

// JSON renders the null constant.
func (Null) JSON() string { return "null" }

func (Null) appendJSON(dst []byte) []byte { return append(dst, "null"...) }

// JSON renders b as a JSON constant.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) appendJSON(dst []byte) []byte { return strconv.AppendBool(dst, bool(b)) }

// JSON renders z as a JSON number.
func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

func (z Int) appendJSON(dst []byte) []byte { return strconv.AppendInt(dst, int64(z), 10) }

// JSON renders f as a JSON number in its shortest form.
func (f Float) JSON() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (f Float) appendJSON(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(f), 'g', -1, 64)
}

// JSON renders s as a JSON string literal with escapes applied.
func (s String) JSON() string { return jsonString(s) }

func (s String) appendJSON(dst []byte) []byte { return escape.AppendQuote(dst, mem.S(string(s))) }

// JSON renders a as a compact JSON array.
func (a Array) JSON() string { return jsonString(a) }

func (a Array) appendJSON(dst []byte) []byte {
	dst = append(dst, '[')
	for i, v := range a {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = v.appendJSON(dst)
	}
	return append(dst, ']')
}

// JSON renders o as a compact JSON object in member order.
func (o Object) JSON() string { return jsonString(o) }

func (o Object) appendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i, m := range o {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = escape.AppendQuote(dst, mem.S(m.Key))
		dst = append(dst, ':')
		dst = m.Value.appendJSON(dst)
	}
	return append(dst, '}')
}
