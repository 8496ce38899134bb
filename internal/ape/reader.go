package ape

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	binutil "github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Result is a decoded tag.
type Result struct {
	// Tags holds the mapped fields and passthrough items.
	Tags *types.Tags

	// Items holds every decoded item in on-disk order.
	Items []types.Item

	Location Location

	// Warnings are non-fatal issues, such as items that could not be decoded.
	Warnings []types.Warning
}

// Read locates, fetches and decodes the tag in f.
//
// Returns types.ErrNotFound when f has no valid tag. Malformed items end
// decoding early and are reported as a warning, not an error, unless
// opts.Strict is set.
func Read(f io.ReadSeeker, opts Options) (*Result, error) {
	size, err := binutil.Size(f)
	if err != nil {
		return nil, err
	}
	return read(binutil.NewSafeReader(f, size, opts.Path), opts)
}

func read(sr *binutil.SafeReader, opts Options) (*Result, error) {
	log := opts.logger()

	loc, err := Locate(sr, log)
	if err != nil {
		return nil, err
	}

	if opts.MaxTagSize > 0 && loc.DataLength > opts.MaxTagSize {
		return nil, &types.TagTooLargeError{
			Path:     sr.Path(),
			Declared: loc.DataLength,
			Limit:    opts.MaxTagSize,
		}
	}

	data := make([]byte, loc.DataLength)
	if err := sr.ReadAt(data, loc.DataStart, "APE tag data"); err != nil {
		return nil, fmt.Errorf("read tag data: %w", err)
	}

	count := loc.Primary.ItemCount
	log.Debug("reading items", zap.Uint32("items", count), zap.Int64("data_length", loc.DataLength))

	items, complete := DecodeItems(data, count, log)

	res := &Result{
		Tags:     &types.Tags{},
		Items:    items,
		Location: loc,
	}

	if !complete {
		msg := fmt.Sprintf("decoded %d of %d items, the rest are malformed", len(items), count)
		if opts.Strict {
			return nil, &types.CorruptedFileError{Path: sr.Path(), Reason: msg, Offset: loc.DataStart}
		}
		res.Warnings = append(res.Warnings, types.Warning{
			Stage:   "items",
			Message: msg,
			Offset:  loc.DataStart,
		})
	}

	Load(items, res.Tags)
	return res, nil
}
