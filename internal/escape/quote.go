// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string literal. The contents are escaped and
// enclosing double quotation marks are added.
func Quote(src mem.RO) []byte { return AppendQuote(make([]byte, 0, src.Len()+2), src) }

// AppendQuote appends the JSON encoding of src, with enclosing double
// quotation marks, to dst, and returns the extended buffer.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r < utf8.RuneSelf {
			switch {
			case r >= ' ':
				if r == '\\' || r == '"' {
					dst = append(dst, '\\')
				}
				dst = append(dst, byte(r))
			case controlEsc[r] != 0:
				dst = append(dst, '\\', controlEsc[r])
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
			continue
		}

		switch r {
		case '\ufffd': // replacement rune, also reported for invalid UTF-8
			dst = append(dst, `\ufffd`...)
		case '\u2028': // line separator
			dst = append(dst, `\u2028`...)
		case '\u2029': // paragraph separator
			dst = append(dst, `\u2029`...)
		default:
			var rbuf [utf8.UTFMax]byte
			n := utf8.EncodeRune(rbuf[:], r)
			dst = append(dst, rbuf[:n]...)
		}
	}
	return append(dst, '"')
}
