package ape

import (
	"slices"

	"go.uber.org/zap"

	binutil "github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// itemHeaderSize is the value length and item flags preceding each key.
const itemHeaderSize = 8

// DecodeItems walks buf and returns up to count items in order.
//
// Decoding stops at the first malformed item: fewer than 8 bytes left, a
// key without a NUL terminator, or a value longer than the bytes that
// remain. The items before it are returned and complete is false. Item
// flags are read but not interpreted.
func DecodeItems(buf []byte, count uint32, log *zap.Logger) (items []types.Item, complete bool) {
	if log == nil {
		log = zap.NewNop()
	}

	// Every item takes at least the header and a terminator.
	capHint := min(int64(count), int64(len(buf)/(itemHeaderSize+1)))
	items = make([]types.Item, 0, capHint)

	c := binutil.NewCursor(buf)
	for range count {
		if c.Remaining() < itemHeaderSize {
			log.Debug("expected item, but too few bytes remain in tag",
				zap.Int("remaining", c.Remaining()))
			return items, false
		}

		start := c.Offset()
		valueLen, _ := c.Uint32LE()
		c.Skip(4) // item flags

		end := c.IndexByte(0)
		if end < 0 {
			log.Debug("unterminated item key",
				zap.Int("offset", start),
				zap.Int("max_length", c.Remaining()))
			return items, false
		}
		key, _ := c.Next(end)
		c.Skip(1)

		if int64(valueLen) > int64(c.Remaining()) {
			log.Debug("item value longer than remaining tag data",
				zap.ByteString("key", key),
				zap.Uint32("value_length", valueLen),
				zap.Int("remaining", c.Remaining()))
			return items, false
		}
		value, _ := c.Next(int(valueLen))

		log.Debug("read item", zap.ByteString("key", key), zap.Int("value_length", len(value)))
		items = append(items, types.Item{Key: string(key), Value: slices.Clone(value)})
	}

	return items, true
}

// EncodeItem appends the on-disk form of an item to b: value length, zero
// item flags, the key and its NUL terminator, then the raw value.
func EncodeItem(b []byte, it types.Item) []byte {
	b = binutil.AppendLE(b, uint32(len(it.Value)))
	b = binutil.AppendLE[uint32](b, 0)
	b = append(b, it.Key...)
	b = append(b, 0)
	return append(b, it.Value...)
}

// encodedSize returns the number of bytes EncodeItem appends for it.
func encodedSize(it types.Item) int64 {
	return itemHeaderSize + int64(len(it.Key)) + 1 + int64(len(it.Value))
}
