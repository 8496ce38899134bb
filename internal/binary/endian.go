package binary

import "encoding/binary"

// DecodeLE decodes a value of type T from the start of b in little-endian
// byte order. b must hold at least the width of T.
func DecodeLE[T uint8 | uint16 | uint32 | uint64](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(b[0])
	case uint16:
		return T(binary.LittleEndian.Uint16(b))
	case uint32:
		return T(binary.LittleEndian.Uint32(b))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}

// AppendLE appends val to b in little-endian byte order.
func AppendLE[T uint8 | uint16 | uint32 | uint64](b []byte, val T) []byte {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return append(b, byte(val))
	case uint16:
		return binary.LittleEndian.AppendUint16(b, uint16(val))
	case uint32:
		return binary.LittleEndian.AppendUint32(b, uint32(val))
	default:
		return binary.LittleEndian.AppendUint64(b, uint64(val))
	}
}
