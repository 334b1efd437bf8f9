package pricebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLiteral(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `Hello World`, want: "Hello World"},
		{name: "parens", raw: `\(quoted\)`, want: "(quoted)"},
		{name: "backslash", raw: `a\\b`, want: `a\b`},
		{name: "named", raw: `\n\r\t\b\f`, want: "\n\r\t\b\f"},
		{name: "octal-three", raw: `\101`, want: "A"},
		{name: "octal-two", raw: `\53`, want: "+"},
		{name: "octal-one", raw: `\0`, want: "\x00"},
		{name: "octal-stops-at-three", raw: `\1012`, want: "A2"},
		{name: "octal-above-byte", raw: `\777`, want: string(rune(511))},
		{name: "unknown-escape", raw: `\q`, want: "q"},
		{name: "trailing-backslash", raw: `abc\`, want: "abc"},
		{name: "mixed", raw: `\( \) \\ \n \101`, want: "( ) \\ \n A"},
		{name: "empty", raw: ``, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeLiteral([]byte(tt.raw)))
		})
	}
}

func TestMatchDelims(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		open int
		last span
	}{
		{name: "unmatched", buf: `xx (abc`, open: 3, last: span{beg: -1, end: -1}},
		{name: "matched", buf: `(abc)`, open: -1, last: span{beg: 0, end: 4}},
		{name: "last-pair-wins", buf: `(a) (b)`, open: -1, last: span{beg: 4, end: 6}},
		{name: "nested", buf: `((a))`, open: -1, last: span{beg: 0, end: 4}},
		{name: "open-after-pair", buf: `(a)(b`, open: 3, last: span{beg: 0, end: 2}},
		{name: "escaped-open-ignored", buf: `a \( b`, open: -1, last: span{beg: -1, end: -1}},
		{name: "escaped-close-ignored", buf: `(a\)b`, open: 0, last: span{beg: -1, end: -1}},
		{name: "stray-close", buf: `)(a`, open: 1, last: span{beg: -1, end: -1}},
		{name: "none", buf: `nothing here`, open: -1, last: span{beg: -1, end: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, last := matchDelims([]byte(tt.buf), lparen, rparen)
			assert.Equal(t, tt.open, open)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "a b c", collapse("  a \t b\n\nc "))
	assert.Equal(t, "", collapse(" \t\n"))
	assert.Equal(t, "one", collapse("one"))
}
