package apetag

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/simonhull/apetag/internal/ape"
)

// Option configures behavior when reading and writing tags.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := apetag.Open("song.mpc",
//	    apetag.WithStrictParsing(),
//	    apetag.WithMaxTagSize(1<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	logger         *zap.Logger
	fs             afero.Fs
	maxTagSize     int64 // Maximum tag data size in bytes (0 = no limit)
	strictParsing  bool  // Fail on malformed items
	ignoreWarnings bool  // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger: zap.NewNop(),
		fs:     afero.NewOsFs(),
	}
}

func newOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// codecOptions converts the options for the codec, tagging errors with path.
func (o *openOptions) codecOptions(path string) ape.Options {
	return ape.Options{
		Logger:     o.logger,
		Path:       path,
		MaxTagSize: o.maxTagSize,
		Strict:     o.strictParsing,
	}
}

// WithLogger sends debug events (records found, items read and written)
// to logger.
//
// By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFs sets the filesystem Open, OpenMany and Save use.
//
// The default is the operating system filesystem. An in-memory
// filesystem is useful in tests:
//
//	fs := afero.NewMemMapFs()
//	file, err := apetag.Open("song.mpc", apetag.WithFs(fs))
func WithFs(fs afero.Fs) Option {
	return func(o *openOptions) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithMaxTagSize sets a maximum size for the tag data that is read.
//
// A tag declaring more item data than this fails with *TagTooLargeError
// before anything is buffered. This protects against files that declare
// absurd lengths.
//
// Default is 0 (no limit).
func WithMaxTagSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxTagSize = bytes
	}
}

// WithStrictParsing treats malformed items as a fatal error.
//
// By default, decoding stops at the first malformed item and the items
// before it are returned along with a warning.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}
