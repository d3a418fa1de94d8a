// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package ojson

import (
	"strings"

	"go4.org/mem"

	"github.com/fumito-ito/ojson/internal/escape"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value. Surrounding double quotation marks
// are removed if present, and escape sequences are replaced with their
// unescaped equivalents. Unquote never fails: malformed and truncated
// escapes are decoded leniently, the same way the decoder treats string
// values.
func Unquote(src string) string {
	src = strings.TrimPrefix(src, `"`)
	src = strings.TrimSuffix(src, `"`)
	return string(escape.Unquote(mem.S(src)))
}
