package ape

import (
	"go.uber.org/zap"

	binutil "github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Location describes where a tag lives in a file.
//
// Start and Span cover the whole tag including its header and footer
// records. DataStart and DataLength cover the item data only.
type Location struct {
	Start      int64
	Span       int64
	DataStart  int64
	DataLength int64

	// Primary is the record the tag was found through: the header when the
	// tag was found at the start of the file, otherwise the footer.
	Primary Record
	// AtStart is true when the tag was found through a leading header.
	AtStart bool
}

// End returns the offset just past the tag.
func (l Location) End() int64 {
	return l.Start + l.Span
}

// match is the outcome of one locate attempt.
type match int

const (
	noMatch  match = iota // no record at the probed offset
	rejected              // a record was found but the tag is invalid
	matched
)

// locator finds the tag records in a file.
type locator struct {
	sr  *binutil.SafeReader
	log *zap.Logger
}

// Locate finds the APE tag in the file behind sr.
//
// A leading header is tried first, then a trailing footer. Each record must
// carry flags consistent with its role, and a companion record the flags
// promise must be present. Returns types.ErrNotFound when no fully
// validated tag exists, or types.ErrLeadingRecord (which matches
// ErrNotFound) when an invalid record occupies the start of the file. Only
// I/O faults are returned as other errors.
func Locate(sr *binutil.SafeReader, log *zap.Logger) (Location, error) {
	if log == nil {
		log = zap.NewNop()
	}
	l := &locator{sr: sr, log: log.With(zap.String("path", sr.Path()))}

	loc, m, err := l.fromHeader()
	if err != nil {
		return Location{}, err
	}
	switch m {
	case matched:
		return loc, nil
	case rejected:
		// A leading record with the magic is never reinterpreted as data.
		return Location{}, types.ErrLeadingRecord
	}

	loc, m, err = l.fromFooter()
	if err != nil {
		return Location{}, err
	}
	if m != matched {
		if m == noMatch {
			l.log.Debug("no APE tag found")
		}
		return Location{}, types.ErrNotFound
	}
	return loc, nil
}

// readRecord reads and decodes the record at off. Bounds failures and bad
// magic report false; only I/O faults return an error.
func (l *locator) readRecord(off int64, what string) (Record, bool, error) {
	buf := make([]byte, RecordSize)
	if err := l.sr.ReadAt(buf, off, what); err != nil {
		if binutil.IsOutOfBounds(err) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	rec, ok := parseRecord(buf)
	return rec, ok, nil
}

// fromHeader tries a header record at offset 0.
func (l *locator) fromHeader() (Location, match, error) {
	header, ok, err := l.readRecord(0, "APE header")
	if err != nil || !ok {
		return Location{}, noMatch, err
	}

	l.log.Debug("found header",
		zap.Int64("offset", 0),
		zap.Uint32("length", header.Length),
		zap.Uint32("version", header.Version))

	if !header.Flags.Has(FlagHasHeader | FlagIsHeader) {
		l.log.Debug("invalid header flags", zap.Stringer("flags", header.Flags))
		return Location{}, rejected, nil
	}

	loc := Location{
		Start:      0,
		Span:       int64(header.Length),
		DataStart:  RecordSize,
		DataLength: header.DataLength(),
		Primary:    header,
		AtStart:    true,
	}

	if !header.Flags.Has(FlagHasNoFooter) {
		_, ok, err := l.readRecord(int64(header.Length), "APE footer")
		if err != nil {
			return Location{}, noMatch, err
		}
		if !ok {
			l.log.Debug("expected footer, but found none", zap.Uint32("offset", header.Length))
			return Location{}, rejected, nil
		}
		loc.Span += RecordSize
	}

	return loc, matched, nil
}

// fromFooter tries a footer record in the last 32 bytes of the file.
func (l *locator) fromFooter() (Location, match, error) {
	pos := l.sr.Size() - RecordSize
	footer, ok, err := l.readRecord(pos, "APE footer")
	if err != nil || !ok {
		return Location{}, noMatch, err
	}

	l.log.Debug("found footer",
		zap.Int64("offset", pos),
		zap.Uint32("length", footer.Length),
		zap.Uint32("version", footer.Version))

	if footer.Flags.Has(FlagHasNoFooter) || footer.Flags.Has(FlagIsHeader) {
		l.log.Debug("invalid footer flags", zap.Stringer("flags", footer.Flags))
		return Location{}, rejected, nil
	}

	// Length counts the items and the footer itself.
	dataStart := pos + RecordSize - int64(footer.Length)
	if dataStart < 0 {
		l.log.Debug("footer length exceeds file size", zap.Uint32("length", footer.Length))
		return Location{}, rejected, nil
	}

	loc := Location{
		Start:      dataStart,
		Span:       int64(footer.Length),
		DataStart:  dataStart,
		DataLength: footer.DataLength(),
		Primary:    footer,
	}

	if footer.Flags.Has(FlagHasHeader) {
		_, ok, err := l.readRecord(dataStart-RecordSize, "APE header")
		if err != nil {
			return Location{}, noMatch, err
		}
		if !ok {
			l.log.Debug("expected header, but found none", zap.Int64("offset", dataStart-RecordSize))
			return Location{}, rejected, nil
		}
		loc.Start -= RecordSize
		loc.Span += RecordSize
	}

	return loc, matched, nil
}
