package pricebook

import (
	"io"
	"strings"
)

var (
	opShow      = []byte("Tj") // single literal operand
	opShowArray = []byte("TJ") // array operand
)

// scanFragments walks decoded page content for the two text showing
// operators and reassembles their operands, one fragment per operator
// invocation, in stream order. When both operator kinds lie ahead the
// earlier one is processed first; scanning resumes right after the token.
func scanFragments(text []byte) []string {
	var (
		r    = NewReader(text)
		list []string
		mark int64
	)
	for {
		var (
			tj = r.Index(opShow)
			ta = r.Index(opShowArray)
		)
		if tj < 0 && ta < 0 {
			break
		}
		array := tj < 0 || (ta >= 0 && ta < tj)
		x := tj
		if array {
			x = ta
		}
		var (
			at     = r.Tell() + int64(x)
			region = text[mark:at]
			frag   string
			ok     bool
		)
		if array {
			frag, ok = arrayOperand(region)
		} else {
			frag, ok = literalOperand(region)
		}
		if ok {
			list = append(list, frag)
		}
		mark = at + int64(len(opShow))
		r.Seek(mark, io.SeekStart)
	}
	return list
}

// literalOperand recovers the string literal operand from the region between
// the previous operator and the current one. The literal starts just after
// the nearest unmatched open paren; with every paren matched, the last
// complete pair before the operator is the operand. No paren at all means
// the occurrence carries nothing to show.
func literalOperand(region []byte) (string, bool) {
	open, last := matchDelims(region, lparen, rparen)
	if open >= 0 {
		return decodeLiteral(region[open+1:]), true
	}
	if last.beg < 0 {
		return "", false
	}
	return decodeLiteral(region[last.beg+1 : last.end]), true
}

// arrayOperand recovers the operand array the same way and concatenates its
// parenthesized literals in order. The numeric spacing adjustments carried
// between strings do not change the decoded text and are skipped over.
func arrayOperand(region []byte) (string, bool) {
	open, last := matchDelims(region, lsquare, rsquare)
	var arr []byte
	switch {
	case open >= 0:
		arr = region[open+1:]
	case last.beg >= 0:
		arr = region[last.beg+1 : last.end]
	default:
		return "", false
	}
	pieces := literalPieces(arr)
	if len(pieces) == 0 {
		return "", false
	}
	return strings.Join(pieces, ""), true
}

// literalPieces collects every parenthesized literal of an array body. A
// piece ends at the first unescaped closing paren, or at the end of the
// body when the paren never comes.
func literalPieces(arr []byte) []string {
	var list []string
	for i := 0; i < len(arr); i++ {
		if arr[i] != lparen {
			continue
		}
		beg := i + 1
		j := beg
		for j < len(arr) {
			if arr[j] == backslash && j+1 < len(arr) {
				j += 2
				continue
			}
			if arr[j] == rparen {
				break
			}
			j++
		}
		list = append(list, decodeLiteral(arr[beg:j]))
		i = j
	}
	return list
}
