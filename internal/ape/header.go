// Package ape implements the APEv2 tag codec: locating the tag at the
// boundaries of a file, decoding its items, mapping them to Tags and
// rewriting the tag in place at the end of the file.
package ape

import (
	"strings"

	binutil "github.com/simonhull/apetag/internal/binary"
)

const (
	// Magic is the preamble of every header and footer record.
	Magic = "APETAGEX"

	// RecordSize is the size of a header or footer record in bytes.
	RecordSize = 32

	// Version is the format version written to new records (APEv2).
	Version = 2000
)

// Flags is the set of record flags. Bit positions match the on-disk layout.
type Flags uint32

const (
	// FlagIsHeader marks the record as the header rather than the footer.
	FlagIsHeader Flags = 1 << 29
	// FlagHasNoFooter marks a tag that has no footer record.
	FlagHasNoFooter Flags = 1 << 30
	// FlagHasHeader marks a tag that has a header record.
	FlagHasHeader Flags = 1 << 31
)

// Has reports whether every flag in want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// String lists the set flags, e.g. "HAS_HEADER|IS_HEADER".
func (f Flags) String() string {
	var names []string
	if f.Has(FlagHasHeader) {
		names = append(names, "HAS_HEADER")
	}
	if f.Has(FlagHasNoFooter) {
		names = append(names, "HAS_NO_FOOTER")
	}
	if f.Has(FlagIsHeader) {
		names = append(names, "IS_HEADER")
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// Record is a decoded 32-byte header or footer record.
//
// Layout (little-endian):
//
//	0   magic     "APETAGEX"
//	8   version   uint32
//	12  length    uint32 (item data plus one record)
//	16  items     uint32
//	20  flags     uint32
//	24  reserved  8 bytes, zero on write
type Record struct {
	Version   uint32
	Length    uint32
	ItemCount uint32
	Flags     Flags
}

// parseRecord decodes a record. It fails if the magic does not match or
// the declared length is smaller than a record.
func parseRecord(b []byte) (Record, bool) {
	if len(b) < RecordSize || string(b[:8]) != Magic {
		return Record{}, false
	}

	c := binutil.NewCursor(b[8:24])
	version, _ := c.Uint32LE()
	length, _ := c.Uint32LE()
	items, _ := c.Uint32LE()
	flags, _ := c.Uint32LE()

	if length < RecordSize {
		return Record{}, false
	}

	return Record{
		Version:   version,
		Length:    length,
		ItemCount: items,
		Flags:     Flags(flags),
	}, true
}

// MarshalBinary encodes the record into its 32-byte on-disk form.
func (r Record) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, RecordSize)
	b = append(b, Magic...)
	b = binutil.AppendLE(b, r.Version)
	b = binutil.AppendLE(b, r.Length)
	b = binutil.AppendLE(b, r.ItemCount)
	b = binutil.AppendLE(b, uint32(r.Flags))
	b = binutil.AppendLE[uint64](b, 0)
	return b, nil
}

// DataLength returns the size of the item data the record describes.
func (r Record) DataLength() int64 {
	return int64(r.Length) - RecordSize
}

// headerRecord builds the leading record for a tag with dataLength bytes of items.
func headerRecord(dataLength uint32, items uint32) Record {
	return Record{
		Version:   Version,
		Length:    dataLength + RecordSize,
		ItemCount: items,
		Flags:     FlagHasHeader | FlagIsHeader,
	}
}

// footerRecord builds the trailing record for a tag with dataLength bytes of items.
func footerRecord(dataLength uint32, items uint32) Record {
	return Record{
		Version:   Version,
		Length:    dataLength + RecordSize,
		ItemCount: items,
		Flags:     FlagHasHeader,
	}
}
