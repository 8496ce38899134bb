package binary

import (
	"bytes"
	"testing"
)

func TestCursor_Sequential(t *testing.T) {
	buf := []byte{0x05, 0x00, 0x00, 0x00, 'K', 'e', 'y', 0x00, 'v'}
	c := NewCursor(buf)

	n, ok := c.Uint32LE()
	if !ok || n != 5 {
		t.Fatalf("Uint32LE = %d, %v; want 5, true", n, ok)
	}
	if c.Offset() != 4 || c.Remaining() != 5 {
		t.Errorf("Offset/Remaining = %d/%d, want 4/5", c.Offset(), c.Remaining())
	}

	if idx := c.IndexByte(0); idx != 3 {
		t.Errorf("IndexByte(0) = %d, want 3", idx)
	}

	key, ok := c.Next(3)
	if !ok || !bytes.Equal(key, []byte("Key")) {
		t.Errorf("Next(3) = %q, %v", key, ok)
	}
	if !c.Skip(1) {
		t.Error("Skip(1) failed")
	}
	if !bytes.Equal(c.Peek(), []byte("v")) {
		t.Errorf("Peek = %q, want %q", c.Peek(), "v")
	}
}

func TestCursor_PastEnd(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	if _, ok := c.Uint32LE(); ok {
		t.Error("Uint32LE should fail with 2 bytes remaining")
	}
	if c.Offset() != 0 {
		t.Errorf("failed read should not advance, offset = %d", c.Offset())
	}
	if _, ok := c.Next(-1); ok {
		t.Error("Next(-1) should fail")
	}
	if c.IndexByte(0) != -1 {
		t.Error("IndexByte should return -1 when byte is absent")
	}
}
