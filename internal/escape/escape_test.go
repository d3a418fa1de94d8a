// Copyright (C) 2025 Fumito Ito. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/fumito-ito/ojson/internal/escape"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"no escapes here", "no escapes here"},
		{"unicode ÷ is fine", "unicode ÷ is fine"},

		{`a\"b`, `a"b`},
		{`a\\b`, `a\b`},
		{`a\/b`, "a/b"},
		{`tab\there`, "tab\there"},
		{`line\nbreak`, "line\nbreak"},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`ends with newline\n`, "ends with newline\n"},

		{`\u0041 is A`, "A is A"},
		{`\u00e9tude`, "étude"},
		{`pair \ud83d\ude00 ok`, "pair \U0001f600 ok"},

		// Lenient fallbacks for input a strict decoder would reject.
		{`unknown \q escape`, "unknown q escape"},
		{`trailing backslash\`, "trailing backslash"},
		{`truncated \u12`, "truncated "},
		{`bad hex \uQQQQ end`, "bad hex � end"},
		{`lone high \ud83d end`, "lone high � end"},
		{`lone low \ude00 end`, "lone low � end"},
		{`high then \ud83dA`, "high then �A"},
	}
	for _, test := range tests {
		got := string(escape.Unquote(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Unquote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"plain text", `"plain text"`},
		{`a "b" c`, `"a \"b\" c"`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak", `"line\nbreak"`},
		{"\b\f\r", `"\b\f\r"`},
		{"control \x01 char", `"control \u0001 char"`},
		{"unicode ÷ ok", "\"unicode ÷ ok\""},
		{"seps \u2028\u2029 end", `"seps \u2028\u2029 end"`},
		{"bad \xff byte", `"bad \ufffd byte"`},
	}
	for _, test := range tests {
		got := string(escape.Quote(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Quote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	inputs := []string{
		"",
		"round trip",
		`quotes " and \ slashes`,
		"controls \b\f\n\r\t \x00 \x1f",
		"seps \u2028 and \u2029",
		"astral \U0001f600 and friends",
	}
	for _, input := range inputs {
		q := escape.Quote(mem.S(input))
		got := string(escape.Unquote(mem.B(q[1 : len(q)-1])))
		if got != input {
			t.Errorf("Unquote(Quote %#q): got %#q", input, got)
		}
	}
}
