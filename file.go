package apetag

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/apetag/internal/ape"
)

// File represents a media file with its parsed APE tag.
//
// File does not hold the underlying file open. Open reads the tag and
// closes the file; Save reopens it for writing.
//
//	file, err := apetag.Open("song.mpc")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
type File struct {
	// Path to the file
	Path string

	// File size in bytes
	Size int64

	// Parsed tag. Empty if the file has no tag.
	Tags Tags

	// Where the tag lives, or nil if the file has no tag.
	Location *Location

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning

	opts *openOptions
}

// Open opens a file and reads its APE tag.
//
// A file without a tag is not an error: HasTag reports false and Tags is
// empty, ready to be filled in and saved.
//
// Options can be provided to customize parsing behavior:
//
//	file, err := apetag.Open("song.mpc",
//	    apetag.WithStrictParsing(),
//	    apetag.WithMaxTagSize(1<<20),
//	)
func Open(path string, opts ...Option) (*File, error) {
	options := newOptions(opts)

	f, err := options.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file := &File{
		Path: path,
		Size: stat.Size(),
		opts: options,
	}

	res, err := ape.Read(f, options.codecOptions(path))
	if errors.Is(err, ErrNotFound) {
		options.logger.Debug("no APE tag")
		return file, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse APE: %w", err)
	}

	file.Tags = *res.Tags
	file.Location = &res.Location
	if !options.ignoreWarnings {
		file.Warnings = res.Warnings
	}

	return file, nil
}

// HasTag reports whether the file had an APE tag when it was opened or
// last saved.
func (f *File) HasTag() bool {
	return f.Location != nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is opened.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, an error naming it is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := apetag.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s - %s\n", f.Path, f.Tags.Artist, f.Tags.Title)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
