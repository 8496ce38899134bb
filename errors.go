package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// ErrNotFound is returned by Read when a file has no valid APE tag.
var ErrNotFound = types.ErrNotFound

// ErrLeadingRecord is returned by Read when the file starts with an
// invalid APE record. It matches ErrNotFound. Writing to such a file fails
// with ErrUnsupportedLocation.
var ErrLeadingRecord = types.ErrLeadingRecord

// ErrUnsupportedLocation matches errors returned when writing to a file
// whose tag is not at the end of the file.
var ErrUnsupportedLocation = types.ErrUnsupportedLocation

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// ShortIOError is an alias to types.ShortIOError.
type ShortIOError = types.ShortIOError

// UnsupportedLocationError is an alias to types.UnsupportedLocationError.
type UnsupportedLocationError = types.UnsupportedLocationError

// WriteError is an alias to types.WriteError.
type WriteError = types.WriteError

// TagTooLargeError is an alias to types.TagTooLargeError.
type TagTooLargeError = types.TagTooLargeError

// CorruptedFileError is an alias to types.CorruptedFileError.
type CorruptedFileError = types.CorruptedFileError

// Warning is an alias to types.Warning.
type Warning = types.Warning
