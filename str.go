package pricebook

import (
	"bytes"
	"strings"
)

// decodeLiteral decodes the body of a literal string, the bytes between the
// parentheses with their escapes still encoded. It knows nothing about
// operators or rows. An escape running past the end of the input is
// truncated silently.
func decodeLiteral(raw []byte) string {
	var str bytes.Buffer
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b != backslash {
			str.WriteByte(b)
			continue
		}
		i++
		if i >= len(raw) {
			break
		}
		switch esc := raw[i]; esc {
		case backslash, lparen, rparen:
			str.WriteByte(esc)
		case 'n':
			str.WriteByte(nl)
		case 'r':
			str.WriteByte(cr)
		case 't':
			str.WriteByte(tab)
		case 'b':
			str.WriteByte(backspace)
		case 'f':
			str.WriteByte(formfeed)
		default:
			if !isOctal(esc) {
				str.WriteByte(esc)
				break
			}
			code := rune(esc - '0')
			for j := 1; j < 3 && i+1 < len(raw) && isOctal(raw[i+1]); j++ {
				i++
				code = code<<3 | rune(raw[i]-'0')
			}
			str.WriteRune(code)
		}
	}
	return str.String()
}

// span bounds one delimited region inside an operand slice.
type span struct {
	beg int
	end int
}

// matchDelims scans buf left to right, honouring backslash escapes, and
// reports the nearest unmatched open delimiter together with the last
// complete top level open/close pair. Either offset is -1 when absent.
func matchDelims(buf []byte, open, close byte) (int, span) {
	var (
		stack []int
		last  = span{beg: -1, end: -1}
	)
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case backslash:
			i++
		case open:
			stack = append(stack, i)
		case close:
			if n := len(stack); n > 0 {
				if n == 1 {
					last = span{beg: stack[0], end: i}
				}
				stack = stack[:n-1]
			}
		}
	}
	if n := len(stack); n > 0 {
		return stack[n-1], last
	}
	return -1, last
}

// collapse trims str and folds internal runs of whitespace to single spaces.
func collapse(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

const (
	nl        = '\n'
	cr        = '\r'
	tab       = '\t'
	formfeed  = '\f'
	backspace = '\b'
	lsquare   = '['
	rsquare   = ']'
	lparen    = '('
	rparen    = ')'
	backslash = '\\'
)

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isOctal(b byte) bool {
	return b >= '0' && b <= '7'
}
