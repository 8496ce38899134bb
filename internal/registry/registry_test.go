package registry

import (
	"bytes"
	"io"
	"slices"
	"testing"

	"github.com/simonhull/apetag/internal/types"
)

// mockCodec implements Codec for testing. It handles files starting with magic.
type mockCodec struct {
	name  string
	magic string
}

func (m *mockCodec) Name() string { return m.name }

func (m *mockCodec) CanHandle(f io.ReadSeeker) bool {
	buf := make([]byte, len(m.magic))
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		return false
	}
	return string(buf) == m.magic
}

func (m *mockCodec) Populate(f io.ReadSeeker, tags *types.Tags) ([]types.Warning, error) {
	tags.Title = m.name
	return nil, nil
}

func (m *mockCodec) Write(f types.File, tags *types.Tags) error { return nil }

func TestRegisterAndGet(t *testing.T) {
	s := NewSelector(&mockCodec{name: "test", magic: "TEST"})

	got := s.Get("test")
	if got == nil {
		t.Fatal("Get() returned nil for registered codec")
	}
	if got.Name() != "test" {
		t.Errorf("Name = %q, want %q", got.Name(), "test")
	}

	if s.Get("missing") != nil {
		t.Error("Get() should return nil for unregistered codec")
	}
}

func TestRegister_Overwrites(t *testing.T) {
	s := NewSelector(&mockCodec{name: "x", magic: "AAAA"}, &mockCodec{name: "y", magic: "BBBB"})
	s.Register(&mockCodec{name: "x", magic: "CCCC"})

	if !slices.Equal(s.Names(), []string{"x", "y"}) {
		t.Errorf("Names = %v, want [x y]", s.Names())
	}
	mc, ok := s.Get("x").(*mockCodec)
	if !ok || mc.magic != "CCCC" {
		t.Errorf("codec x should be replaced, got %+v", s.Get("x"))
	}
}

func TestSelect(t *testing.T) {
	s := NewSelector(
		&mockCodec{name: "first", magic: "AB"},
		&mockCodec{name: "second", magic: "ABC"},
	)

	tests := []struct {
		data string
		want string
	}{
		{"ABCD", "first"},
		{"XYZ", ""},
	}

	for _, tt := range tests {
		got := s.Select(bytes.NewReader([]byte(tt.data)))
		name := ""
		if got != nil {
			name = got.Name()
		}
		if name != tt.want {
			t.Errorf("Select(%q) = %q, want %q", tt.data, name, tt.want)
		}
	}
}
