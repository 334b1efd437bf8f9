package pricebook

import (
	"bytes"
	"fmt"
	"io"
)

// Reader is a cursor over an immutable byte buffer. All scanning in this
// package goes through a Reader so that offsets are tracked in one place
// instead of being recomputed by repeated substring searches.
type Reader struct {
	buf []byte
	ptr int
}

func NewReader(b []byte) *Reader {
	return &Reader{
		buf: b,
		ptr: 0,
	}
}

func (r *Reader) AtEOF() bool {
	return r.ptr >= len(r.buf)
}

// Section returns a new Reader over a sub range of the buffer. The section
// shares the underlying bytes.
func (r *Reader) Section(offset, size int64) *Reader {
	return NewReader(r.buf[offset : offset+size])
}

func (r *Reader) Size() int64 {
	return int64(len(r.buf))
}

func (r *Reader) Len() int {
	if r.ptr >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.ptr
}

// Index reports the offset of b relative to the current position, -1 if b
// does not occur in the remaining bytes.
func (r *Reader) Index(b []byte) int {
	if r.ptr > len(r.buf) {
		return -1
	}
	return bytes.Index(r.buf[r.ptr:], b)
}

func (r *Reader) Bytes() []byte {
	if r.ptr >= len(r.buf) {
		return nil
	}
	return r.buf[r.ptr:]
}

func (r *Reader) StartsWith(b []byte) bool {
	if r.ptr >= len(r.buf) {
		return false
	}
	return bytes.HasPrefix(r.buf[r.ptr:], b)
}

func (r *Reader) Discard(n int) (int, error) {
	if r.ptr >= len(r.buf) {
		return 0, io.EOF
	}
	r.ptr += n
	if r.ptr >= len(r.buf) {
		n = r.ptr - len(r.buf)
		r.ptr = len(r.buf)
	}
	return n, nil
}

func (r *Reader) Read(b []byte) (int, error) {
	if r.ptr >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(b, r.buf[r.ptr:])
	r.ptr += n
	return n, nil
}

func (r *Reader) Tell() int64 {
	return int64(r.ptr)
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		r.ptr = int(offset)
	case io.SeekCurrent:
		r.ptr += int(offset)
	case io.SeekEnd:
		r.ptr = len(r.buf) + int(offset)
	default:
		return 0, fmt.Errorf("seek: invalid whence")
	}
	if r.ptr < 0 {
		return 0, fmt.Errorf("seek: negative position")
	}
	return int64(r.ptr), nil
}

func (r *Reader) ReadByte() (byte, error) {
	if r.ptr >= len(r.buf) {
		return 0, io.EOF
	}
	b := r.buf[r.ptr]
	r.ptr++
	return b, nil
}

func (r *Reader) UnreadByte() error {
	if r.ptr <= 0 {
		return nil
	}
	r.ptr--
	return nil
}
