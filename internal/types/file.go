// Package types provides the core data structures shared by the APE tag
// codec and its public API.
//
// This package defines the Tags record, the seekable File abstraction the
// codec reads and rewrites, and the error taxonomy surfaced to callers.
package types

import (
	"io"
)

// File is the seekable file abstraction the codec operates on.
//
// Reads and writes go through the current position set by Seek. The size of
// the file is obtained by seeking to its end. Truncate shortens the file to
// the given length without moving the position.
//
// *os.File and afero.File both satisfy File.
type File interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
}
