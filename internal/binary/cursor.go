package binary

import "bytes"

// Cursor provides sequential reading over an in-memory buffer with
// automatic offset tracking. Reads never panic; a read past the end
// reports failure and leaves the cursor unchanged.
type Cursor struct {
	buf    []byte
	offset int
}

// NewCursor creates a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.offset
}

// Peek returns the unread bytes without advancing.
func (c *Cursor) Peek() []byte {
	return c.buf[c.offset:]
}

// Next returns the next n bytes and advances past them.
func (c *Cursor) Next(n int) ([]byte, bool) {
	if n < 0 || n > c.Remaining() {
		return nil, false
	}
	b := c.buf[c.offset : c.offset+n]
	c.offset += n
	return b, true
}

// Skip advances the offset by n bytes.
func (c *Cursor) Skip(n int) bool {
	_, ok := c.Next(n)
	return ok
}

// Uint32LE reads a little-endian uint32 and advances.
func (c *Cursor) Uint32LE() (uint32, bool) {
	b, ok := c.Next(4)
	if !ok {
		return 0, false
	}
	return DecodeLE[uint32](b), true
}

// IndexByte returns the distance from the current offset to the next
// occurrence of v, or -1.
func (c *Cursor) IndexByte(v byte) int {
	return bytes.IndexByte(c.Peek(), v)
}
