package ape

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/spf13/afero"

	"github.com/simonhull/apetag/internal/types"
)

// audioBytes returns n bytes of fake audio content.
func audioBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 3)
	}
	return b
}

func recordBytes(t testing.TB, r Record) []byte {
	t.Helper()
	b, err := r.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	return b
}

// encodeItems returns the item data for items.
func encodeItems(items ...types.Item) []byte {
	var b []byte
	for _, it := range items {
		b = EncodeItem(b, it)
	}
	return b
}

// tagBytes builds a complete tag. withHeader adds a leading header record.
func tagBytes(t testing.TB, withHeader bool, items ...types.Item) []byte {
	t.Helper()
	data := encodeItems(items...)
	n := uint32(len(data))
	count := uint32(len(items))

	var b []byte
	if withHeader {
		b = append(b, recordBytes(t, headerRecord(n, count))...)
	}
	b = append(b, data...)
	footer := footerRecord(n, count)
	if !withHeader {
		footer.Flags = 0
	}
	return append(b, recordBytes(t, footer)...)
}

func item(key, value string) types.Item {
	return types.Item{Key: key, Value: []byte(value)}
}

// memFile returns an in-memory file holding data.
func memFile(t testing.TB, data []byte) afero.File {
	t.Helper()
	fs := afero.NewMemMapFs()
	f, err := fs.Create("test.ape")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// contents returns the whole content of f.
func contents(t testing.TB, f io.ReadSeeker) []byte {
	t.Helper()
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("seek: %v", err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return b
}

// readRecorder records the offset of every Read call.
type readRecorder struct {
	*bytes.Reader
	offsets []int64
}

func (r *readRecorder) Read(p []byte) (int, error) {
	off, _ := r.Reader.Seek(0, io.SeekCurrent)
	r.offsets = append(r.offsets, off)
	return r.Reader.Read(p)
}

// failingFile wraps a File and fails writes once budget bytes were written.
type failingFile struct {
	types.File
	budget int
}

func (f *failingFile) Write(p []byte) (int, error) {
	if len(p) > f.budget {
		n, _ := f.File.Write(p[:f.budget])
		f.budget = 0
		return n, errors.New("disk full")
	}
	f.budget -= len(p)
	return f.File.Write(p)
}
