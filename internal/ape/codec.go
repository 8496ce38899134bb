package ape

import (
	"errors"
	"io"

	binutil "github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Codec exposes the APE tag format through the capabilities a format
// selector needs: probing, populating a record and writing it back.
//
// A Codec holds no per-file state and may be shared between goroutines.
// Calls on the same file must be serialized by the caller.
type Codec struct {
	opts Options
}

// NewCodec creates a Codec with the given options.
func NewCodec(opts Options) *Codec {
	return &Codec{opts: opts}
}

// Name returns "APE".
func (c *Codec) Name() string {
	return "APE"
}

// CanHandle reports whether f carries a valid APE tag.
func (c *Codec) CanHandle(f io.ReadSeeker) bool {
	_, err := c.Locate(f)
	return err == nil
}

// Locate returns where the tag in f lives.
func (c *Codec) Locate(f io.ReadSeeker) (Location, error) {
	size, err := binutil.Size(f)
	if err != nil {
		return Location{}, err
	}
	return Locate(binutil.NewSafeReader(f, size, c.opts.Path), c.opts.logger())
}

// Read decodes the tag in f. See Read.
func (c *Codec) Read(f io.ReadSeeker) (*Result, error) {
	return Read(f, c.opts)
}

// Populate maps the tag in f into tags.
//
// A file without a tag leaves tags unmodified and is not an error. When a
// tag is found, its passthrough items replace the ones already in tags.
func (c *Codec) Populate(f io.ReadSeeker, tags *types.Tags) ([]types.Warning, error) {
	res, err := Read(f, c.opts)
	if errors.Is(err, types.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tags.ClearItems()
	Load(res.Items, tags)
	return res.Warnings, nil
}

// Write replaces the tag at the end of f. See Write.
func (c *Codec) Write(f types.File, tags *types.Tags) error {
	return Write(f, tags, c.opts)
}
