package apetag

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/spf13/afero"
)

// audio stands in for the media content preceding a tag.
var audio = []byte("MPCK\x00\x01\x02\x03 not really audio")

// itemBody encodes items in order, given as alternating key/value strings.
func itemBody(kv ...string) []byte {
	var body []byte
	for i := 0; i+1 < len(kv); i += 2 {
		body = binary.LittleEndian.AppendUint32(body, uint32(len(kv[i+1])))
		body = binary.LittleEndian.AppendUint32(body, 0)
		body = append(body, kv[i]...)
		body = append(body, 0)
		body = append(body, kv[i+1]...)
	}
	return body
}

func record(bodyLen, items int, flags Flags) []byte {
	b := []byte("APETAGEX")
	b = binary.LittleEndian.AppendUint32(b, 2000)
	b = binary.LittleEndian.AppendUint32(b, uint32(bodyLen+32))
	b = binary.LittleEndian.AppendUint32(b, uint32(items))
	b = binary.LittleEndian.AppendUint32(b, uint32(flags))
	return append(b, make([]byte, 8)...)
}

// footerOnlyTag builds a footer-terminated tag without a header.
func footerOnlyTag(kv ...string) []byte {
	body := itemBody(kv...)
	return concat(body, record(len(body), len(kv)/2, 0))
}

// leadingTag builds a header-only tag meant for the start of a file.
func leadingTag(kv ...string) []byte {
	body := itemBody(kv...)
	return concat(record(len(body), len(kv)/2, FlagHasHeader|FlagIsHeader|FlagHasNoFooter), body)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// memFs returns an in-memory filesystem holding name with content.
func memFs(t *testing.T, name string, content []byte) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, name, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return fs
}

// openRW opens name on fs for reading and writing.
func openRW(t *testing.T, fs afero.Fs, name string) afero.File {
	t.Helper()
	f, err := fs.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func readAll(t *testing.T, fs afero.Fs, name string) []byte {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return b
}
