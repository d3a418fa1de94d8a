// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package ojson

// Index scans data once and returns the byte offsets at which the decoder's
// structural tokens begin: the quotation marks bounding each string,
// brackets, braces, colons, commas, and the first byte of each number and
// each t/f/n literal. Offsets are strictly increasing and always less than
// len(data); a final token truncated by the end of input still contributes
// its starting offset. Bytes inside a string are never structural, and an
// unterminated string contributes only its opening quotation mark.
//
// Index never fails. Bytes that fit no token class are skipped.
func Index(data []byte) []int { return appendIndex(nil, data) }

// appendIndex appends the structural offsets of data to dst and returns the
// extended slice.
func appendIndex(dst []int, data []byte) []int {
	var inString, escaped bool
	for i := 0; i < len(data); i++ {
		b := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				dst = append(dst, i)
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			dst = append(dst, i)
			inString = true
		case '[', ']', '{', '}', ':':
			dst = append(dst, i)
		case ',':
			// Skipping the whitespace run after a comma normalizes the
			// spacing between elements before the decoder sees it.
			dst = append(dst, i)
			for i+1 < len(data) && isSpace(data[i+1]) {
				i++
			}
		case 't', 'f', 'n':
			dst = append(dst, i)
			i = literalEnd(data, i) - 1
		default:
			if isNumStart(b) {
				dst = append(dst, i)
				i = numberEnd(data, i) - 1
			}
		}
	}
	return dst
}

// numberEnd returns the offset just past the numeric token starting at
// data[pos]: an optional leading minus sign, then digits with at most one
// decimal point. The decoder scans the same way, so the two stages always
// agree about where a number stops.
func numberEnd(data []byte, pos int) int {
	i := pos
	if i < len(data) && data[i] == '-' {
		i++
	}
	var dot bool
	for i < len(data) {
		if b := data[i]; isDigit(b) {
			i++
		} else if b == '.' && !dot {
			dot = true
			i++
		} else {
			break
		}
	}
	return i
}

// literalEnd returns the offset just past the t/f/n literal starting at
// data[pos]. A literal runs until whitespace, a comma, or a closing bracket.
func literalEnd(data []byte, pos int) int {
	i := pos + 1
	for i < len(data) && !isLiteralEnd(data[i]) {
		i++
	}
	return i
}

func isLiteralEnd(b byte) bool { return isSpace(b) || b == ',' || b == ']' || b == '}' }

func isSpace(b byte) bool { return b == ' ' || b == '\r' || b == '\n' || b == '\t' }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isNumStart(b byte) bool { return b == '-' || isDigit(b) }
