package types

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no valid APE tag is located in a file.
var ErrNotFound = errors.New("apetag: no tag found")

// ErrLeadingRecord is returned when the file starts with an APE record
// that does not form a valid tag. It matches ErrNotFound: the file has no
// readable tag, and a tag appended after it would never be found.
var ErrLeadingRecord = fmt.Errorf("%w: invalid record at start of file", ErrNotFound)

// ErrUnsupportedLocation is matched by UnsupportedLocationError via errors.Is.
var ErrUnsupportedLocation = errors.New("apetag: tag is not at end of file")

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// ShortIOError is returned when a seek fails or a read or write transfers
// fewer bytes than requested.
type ShortIOError struct {
	Err    error
	Op     string // "seek", "read", "write"
	What   string
	Offset int64
	Want   int
	Got    int
}

func (e *ShortIOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s at offset %d: got %d of %d bytes: %v",
			e.Op, e.What, e.Offset, e.Got, e.Want, e.Err)
	}
	return fmt.Sprintf("short %s of %s at offset %d: got %d of %d bytes",
		e.Op, e.What, e.Offset, e.Got, e.Want)
}

func (e *ShortIOError) Unwrap() error {
	return e.Err
}

// UnsupportedLocationError is returned by a write when the existing tag
// does not end at the end of the file. The file is left untouched.
type UnsupportedLocationError struct {
	Path  string
	Start int64
	Span  int64
	Size  int64
}

func (e *UnsupportedLocationError) Error() string {
	return fmt.Sprintf("%s: tag at %d spans %d bytes but file size is %d: writing is only supported at end of file",
		e.Path, e.Start, e.Span, e.Size)
}

// Is matches ErrUnsupportedLocation.
func (e *UnsupportedLocationError) Is(target error) bool {
	return target == ErrUnsupportedLocation
}

// WriteError is returned when a step of the tag rewrite fails.
//
// The file may be truncated or partially rewritten when this error is
// returned. No rollback is performed.
type WriteError struct {
	Err  error
	Path string
	Step string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: write tag: %s: %v", e.Path, e.Step, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// TagTooLargeError is returned when a located tag declares a data span
// larger than the configured limit.
type TagTooLargeError struct {
	Path     string
	Declared int64
	Limit    int64
}

func (e *TagTooLargeError) Error() string {
	return fmt.Sprintf("%s: tag data of %d bytes exceeds limit of %d bytes", e.Path, e.Declared, e.Limit)
}

// CorruptedFileError is returned in strict mode when tag items could not
// all be decoded.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted tag at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction, such
// as a tag whose items end early because one of them is malformed.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "items"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
