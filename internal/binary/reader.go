// Package binary provides bounds-checked binary I/O primitives over seekable files.
package binary

import (
	"errors"
	"io"

	"github.com/simonhull/apetag/internal/types"
)

// Size returns the size of s by seeking to its end.
//
// The position of s is left at the end of the file.
func Size(s io.Seeker) (int64, error) {
	size, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, &types.ShortIOError{Op: "seek", What: "end of file", Err: err}
	}
	return size, nil
}

// SafeReader wraps io.ReadSeeker with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReadSeeker
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReadSeeker, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the file size the reader checks bounds against.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt seeks to off and fills b, with context for error messages.
//
// Reads that fall outside the file return *types.OutOfBoundsError without
// touching the underlying reader. A failed seek or a short read returns
// *types.ShortIOError.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if len(b) == 0 {
		return nil
	}

	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	if _, err := sr.r.Seek(off, io.SeekStart); err != nil {
		return &types.ShortIOError{Op: "seek", What: what, Offset: off, Want: len(b), Err: err}
	}

	n, err := io.ReadFull(sr.r, b)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			err = nil
		}
		return &types.ShortIOError{Op: "read", What: what, Offset: off, Want: len(b), Got: n, Err: err}
	}

	return nil
}

// IsOutOfBounds reports whether err is a bounds failure rather than an I/O fault.
func IsOutOfBounds(err error) bool {
	var oob *types.OutOfBoundsError
	return errors.As(err, &oob)
}
