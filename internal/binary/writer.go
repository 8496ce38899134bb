package binary

import (
	"io"

	"github.com/simonhull/apetag/internal/types"
)

// SafeWriter wraps io.Writer with position tracking and short-write detection.
type SafeWriter struct {
	w      io.Writer
	what   string
	base   int64
	offset int64
}

// NewSafeWriter creates a new SafeWriter. base is the file offset of the
// first byte written and is only used for error context.
func NewSafeWriter(w io.Writer, base int64, what string) *SafeWriter {
	return &SafeWriter{
		w:    w,
		what: what,
		base: base,
	}
}

// Offset returns the number of bytes written so far.
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
//
// A write that stores fewer than len(b) bytes returns *types.ShortIOError
// even if the writer reported no error.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	off := sw.base + sw.offset
	sw.offset += int64(n)
	if err != nil || n != len(b) {
		return &types.ShortIOError{Op: "write", What: sw.what, Offset: off, Want: len(b), Got: n, Err: err}
	}
	return nil
}
