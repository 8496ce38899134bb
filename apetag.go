package apetag

import (
	"fmt"
	"io"

	"github.com/simonhull/apetag/internal/ape"
	"github.com/simonhull/apetag/internal/registry"
	"github.com/simonhull/apetag/internal/types"
)

// Codec is the capability interface a tag format implements so a selector
// can choose between sibling formats.
type Codec = registry.Codec

// APECodec implements Codec for APEv2 tags.
type APECodec = ape.Codec

// Selector chooses a Codec by probing registered codecs in order.
type Selector = registry.Selector

// Location describes where a tag lives within a file.
type Location = ape.Location

// Record is a decoded 32-byte header or footer record.
type Record = ape.Record

// Flags is the flag word of a header or footer record.
type Flags = ape.Flags

// Re-export record flags.
const (
	FlagIsHeader    = ape.FlagIsHeader
	FlagHasNoFooter = ape.FlagHasNoFooter
	FlagHasHeader   = ape.FlagHasHeader
)

// FileHandle is a seekable, truncatable byte stream. *os.File and
// afero.File satisfy it.
type FileHandle = types.File

// NewCodec returns an APE codec configured with opts.
//
// The codec can be registered with a Selector next to codecs for other
// tag formats.
func NewCodec(opts ...Option) *APECodec {
	return ape.NewCodec(newOptions(opts).codecOptions(""))
}

// NewSelector returns a Selector with the APE codec registered.
func NewSelector(opts ...Option) *Selector {
	return registry.NewSelector(NewCodec(opts...))
}

// Probe returns the name of the tag format found in r, or "" if no
// registered codec recognizes it.
func Probe(r io.ReadSeeker, opts ...Option) string {
	c := NewSelector(opts...).Select(r)
	if c == nil {
		return ""
	}
	return c.Name()
}

// Locate returns where the APE tag in r lives.
//
// Returns ErrNotFound if r has no valid tag.
func Locate(r io.ReadSeeker, opts ...Option) (Location, error) {
	return NewCodec(opts...).Locate(r)
}

// Read decodes the APE tag in r.
//
// Returns ErrNotFound if r has no valid tag. Items that cannot be decoded
// are reported as warnings unless WithStrictParsing is used.
func Read(r io.ReadSeeker, opts ...Option) (*Tags, []Warning, error) {
	options := newOptions(opts)
	res, err := ape.Read(r, options.codecOptions(""))
	if err != nil {
		return nil, nil, err
	}
	if options.ignoreWarnings {
		return res.Tags, nil, nil
	}
	return res.Tags, res.Warnings, nil
}

// Write replaces the APE tag at the end of f with tags, or appends a new
// one if f has none.
//
// Standard fields are written first, then the passthrough items. If
// tags has no passthrough items loaded or edited, the ones already in f
// are kept.
//
// A tag that is not at the end of f is rejected with
// *UnsupportedLocationError before anything is modified.
func Write(f FileHandle, tags *Tags, opts ...Option) error {
	if tags == nil {
		return fmt.Errorf("write: nil tags")
	}
	return ape.Write(f, tags, newOptions(opts).codecOptions(""))
}
