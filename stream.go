package pricebook

import (
	"compress/zlib"
	"io"

	"golang.org/x/text/encoding/charmap"
)

var (
	begstream = []byte("stream")
	endstream = []byte("\nendstream")
)

// payloads returns the byte ranges lying between a stream keyword and the
// matching endstream keyword, leftmost first, non overlapping. No attempt
// is made to check that a range really holds page content: ranges that are
// not Flate material fail to inflate and are dropped there.
func payloads(r *Reader) [][]byte {
	var list [][]byte
	for {
		x := r.Index(begstream)
		if x < 0 {
			break
		}
		r.Discard(x + len(begstream))
		if !skipEOL(r) {
			continue
		}
		beg := r.Tell()
		y := r.Index(endstream)
		if y < 0 {
			break
		}
		body := r.Section(beg, int64(y)).Bytes()
		if n := len(body); n > 0 && body[n-1] == cr {
			body = body[:n-1]
		}
		list = append(list, body)
		r.Discard(y + len(endstream))
	}
	return list
}

// skipEOL consumes the optional carriage return and the newline that follow
// the stream keyword. It reports false when the keyword is not followed by a
// line ending, in which case the occurrence is not a payload delimiter.
func skipEOL(r *Reader) bool {
	b, err := r.ReadByte()
	if err != nil {
		return false
	}
	if b == cr {
		b, err = r.ReadByte()
		if err != nil {
			return false
		}
	}
	if b != nl {
		r.UnreadByte()
		return false
	}
	return true
}

func inflate(body []byte) ([]byte, error) {
	z, err := zlib.NewReader(NewReader(body))
	if err != nil {
		return nil, err
	}
	defer z.Close()
	return io.ReadAll(z)
}

// decodeStream maps the inflated payload bytes to text one byte per
// character. Every byte has a latin1 interpretation so this never fails.
func decodeStream(body []byte) []byte {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(body)
	if err != nil {
		return body
	}
	return text
}
