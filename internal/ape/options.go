package ape

import "go.uber.org/zap"

// Options configures reads and writes.
type Options struct {
	// Logger receives debug events. Nil means no logging.
	Logger *zap.Logger

	// Path is used for error messages only.
	Path string

	// MaxTagSize caps the item data buffered for a tag, in bytes.
	// 0 means no limit beyond the format's own length fields.
	MaxTagSize int64

	// Strict turns an early end of item decoding into an error.
	Strict bool
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
