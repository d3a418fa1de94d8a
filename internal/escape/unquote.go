// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Unquote
// never fails: an unrecognized escape keeps the character that follows the
// backslash, a truncated escape at the end of the input is dropped, and a
// malformed or unpaired Unicode escape is replaced by the Unicode
// replacement rune.
func Unquote(src mem.RO) []byte {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src)
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the rune after the backslash to figure out what to
		// substitute. A backslash ending the input escapes nothing and is
		// dropped.
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			break
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			if src.Len() < 4 {
				// Truncated Unicode escape: the remaining bytes belong to
				// the escape, so drop them and stop.
				src = src.SliceFrom(src.Len())
				break
			}
			v, ok := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if !ok {
				putRune(utf8.RuneError)
				break
			}
			u := rune(v)
			if utf16.IsSurrogate(u) {
				var size int
				u, size = combineSurrogate(u, src)
				src = src.SliceFrom(size)
			}
			putRune(u)
		default:
			// An unrecognized escape keeps the escaped character.
			putRune(r)
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec
}

// combineSurrogate decodes a \uXXXX escape at the start of src and combines
// it with the surrogate half hi. It returns the combined rune and the number
// of bytes consumed from src. Unpaired and malformed surrogates combine to
// the replacement rune and consume nothing.
func combineSurrogate(hi rune, src mem.RO) (rune, int) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return utf8.RuneError, 0
	}
	v, ok := parseHex(src.SliceFrom(2).SliceTo(4))
	if !ok {
		return utf8.RuneError, 0
	}
	if r := utf16.DecodeRune(hi, rune(v)); r != utf8.RuneError {
		return r, 6
	}
	return utf8.RuneError, 0
}

func parseHex(data mem.RO) (int64, bool) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, false
		}
	}
	return v, true
}
