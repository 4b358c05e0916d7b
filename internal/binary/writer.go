package binary

import (
	"io"
)

// Writer wraps an io.Writer with position tracking.
type Writer struct {
	w      io.Writer
	offset int64
}

// NewWriter creates a Writer starting at offset 0.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return w.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (w *Writer) WriteBytes(b []byte) error {
	n, err := w.w.Write(b)
	w.offset += int64(n)
	return err
}
