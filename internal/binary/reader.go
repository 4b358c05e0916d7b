// Package binary provides sequential binary I/O primitives with offset
// tracking and contextual error messages.
package binary

import (
	"fmt"
	"io"
)

// Reader wraps an io.Reader with offset tracking and helpful error messages.
//
// Every read carries a short description of what is being read so that a
// failure deep inside a stream names the field, not just the byte count.
type Reader struct {
	r      io.Reader
	offset int64
}

// NewReader creates a Reader starting at offset 0.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadFull fills b from the stream.
//
// If the stream ends before the first byte, io.EOF is returned unchanged so
// callers can treat it as a normal end-of-input signal. If it ends midway,
// io.ErrUnexpectedEOF is wrapped with the field description.
func (r *Reader) ReadFull(b []byte, what string) error {
	n, err := io.ReadFull(r.r, b)
	r.offset += int64(n)
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("read %s at offset %d: %w", what, r.offset-int64(n), err)
	}
	return nil
}
