package ape

import (
	"errors"
	"io"
	"math"

	"go.uber.org/zap"

	binutil "github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Write replaces the tag at the end of f with one built from tags.
//
// The standard fields are written first, then the passthrough items. When
// tags.ItemsSet is false the passthrough items are the ones already in the
// file; otherwise they are the items carried by tags. Passthrough items
// using a standard key are dropped.
//
// A file whose existing tag does not end at the end of the file, or that
// starts with an invalid APE record, is rejected with
// *types.UnsupportedLocationError before anything is modified. Any later failure returns *types.WriteError and may leave the
// file truncated or partially written.
func Write(f types.File, tags *types.Tags, opts Options) error {
	log := opts.logger()
	fail := func(step string, err error) error {
		return &types.WriteError{Path: opts.Path, Step: step, Err: err}
	}

	size, err := binutil.Size(f)
	if err != nil {
		return fail("size", err)
	}

	start := size
	var existing []types.Item

	readOpts := opts
	readOpts.Strict = false
	res, err := read(binutil.NewSafeReader(f, size, opts.Path), readOpts)
	switch {
	case err == nil:
		if res.Location.End() != size {
			log.Debug("writing tags is only supported at end of file",
				zap.Int64("tag_end", res.Location.End()),
				zap.Int64("size", size))
			return &types.UnsupportedLocationError{
				Path:  opts.Path,
				Start: res.Location.Start,
				Span:  res.Location.Span,
				Size:  size,
			}
		}
		start = res.Location.Start
		existing = res.Items
	case errors.Is(err, types.ErrLeadingRecord):
		log.Debug("invalid APE record at start of file, refusing to append a tag")
		return &types.UnsupportedLocationError{
			Path:  opts.Path,
			Start: 0,
			Span:  RecordSize,
			Size:  size,
		}
	case errors.Is(err, types.ErrNotFound):
	default:
		return fail("read existing tag", err)
	}

	passthrough := existing
	if tags.ItemsSet() {
		passthrough = tags.Items()
	}

	items := Store(tags)
	for _, it := range passthrough {
		if IsKnownKey(it.Key) {
			continue
		}
		items = append(items, it)
	}

	var dataLength int64
	for _, it := range items {
		dataLength += encodedSize(it)
	}
	if dataLength > math.MaxUint32-RecordSize || uint64(len(items)) > math.MaxUint32 {
		return fail("encode", errors.New("tag too large for 32-bit length field"))
	}

	if err := f.Truncate(start); err != nil {
		return fail("truncate", err)
	}
	if err := seek(f, start); err != nil {
		return fail("seek", err)
	}

	sw := binutil.NewSafeWriter(f, start, "APE tag")
	if err := writeRecord(sw, headerRecord(0, 0)); err != nil {
		return fail("write placeholder header", err)
	}

	var buf []byte
	for _, it := range items {
		log.Debug("write item", zap.String("key", it.Key), zap.Int("value_length", len(it.Value)))
		buf = EncodeItem(buf[:0], it)
		if err := sw.WriteBytes(buf); err != nil {
			return fail("write item", err)
		}
	}

	written := uint32(sw.Offset() - RecordSize)
	count := uint32(len(items))
	log.Debug("wrote items", zap.Uint32("items", count), zap.Uint32("bytes", written))

	if err := writeRecord(sw, footerRecord(written, count)); err != nil {
		return fail("write footer", err)
	}
	if err := seek(f, start); err != nil {
		return fail("seek", err)
	}
	if err := writeRecord(binutil.NewSafeWriter(f, start, "APE header"), headerRecord(written, count)); err != nil {
		return fail("write header", err)
	}

	return nil
}

func writeRecord(sw *binutil.SafeWriter, r Record) error {
	b, err := r.MarshalBinary()
	if err != nil {
		return err
	}
	return sw.WriteBytes(b)
}

func seek(f io.Seeker, off int64) error {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return &types.ShortIOError{Op: "seek", What: "APE tag", Offset: off, Err: err}
	}
	return nil
}
