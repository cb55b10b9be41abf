// Package byteutil converts fixed-width integers and floating point values to and
// from big-endian byte slices, and provides the small slice helpers the
// advertising codec needs. BLE puts multi-byte values on the air in little-endian
// order; use Reverse to convert between the two.
package byteutil

import (
	"encoding/binary"
	"math"
)

// Widths, in bytes, of the supported primitives.
const (
	Int16Len   = 2
	Int32Len   = 4
	Int64Len   = 8
	Float32Len = 4
	Float64Len = 8
)

// Int16ToBytes returns the big-endian encoding of v.
func Int16ToBytes(v int16) []byte {
	b := make([]byte, Int16Len)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}

// Int32ToBytes returns the big-endian encoding of v.
func Int32ToBytes(v int32) []byte {
	b := make([]byte, Int32Len)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

// Int64ToBytes returns the big-endian encoding of v.
func Int64ToBytes(v int64) []byte {
	b := make([]byte, Int64Len)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// Float32ToBytes returns the big-endian encoding of the IEEE-754 bits of f.
func Float32ToBytes(f float32) []byte {
	return Int32ToBytes(int32(math.Float32bits(f)))
}

// Float64ToBytes returns the big-endian encoding of the IEEE-754 bits of f.
func Float64ToBytes(f float64) []byte {
	return Int64ToBytes(int64(math.Float64bits(f)))
}

// BytesToInt16 decodes at most the first 2 bytes of b as a big-endian value.
// A shorter b yields the value of the bytes that are present.
func BytesToInt16(b []byte) int16 {
	return int16(fold(b, Int16Len))
}

// BytesToInt32 decodes at most the first 4 bytes of b as a big-endian value.
func BytesToInt32(b []byte) int32 {
	return int32(fold(b, Int32Len))
}

// BytesToInt64 decodes at most the first 8 bytes of b as a big-endian value.
func BytesToInt64(b []byte) int64 {
	return int64(fold(b, Int64Len))
}

// BytesToFloat32 reinterprets BytesToInt32(b) as IEEE-754 bits.
func BytesToFloat32(b []byte) float32 {
	return math.Float32frombits(uint32(BytesToInt32(b)))
}

// BytesToFloat64 reinterprets BytesToInt64(b) as IEEE-754 bits.
func BytesToFloat64(b []byte) float64 {
	return math.Float64frombits(uint64(BytesToInt64(b)))
}

func fold(b []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n && i < len(b); i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// Int16At decodes a big-endian int16 starting at off.
// It reports false if off is negative or fewer than 2 bytes remain.
func Int16At(b []byte, off int) (int16, bool) {
	if !fits(b, off, Int16Len) {
		return 0, false
	}
	return int16(binary.BigEndian.Uint16(b[off:])), true
}

// Int32At decodes a big-endian int32 starting at off.
func Int32At(b []byte, off int) (int32, bool) {
	if !fits(b, off, Int32Len) {
		return 0, false
	}
	return int32(binary.BigEndian.Uint32(b[off:])), true
}

// Int64At decodes a big-endian int64 starting at off.
func Int64At(b []byte, off int) (int64, bool) {
	if !fits(b, off, Int64Len) {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(b[off:])), true
}

// Float32At decodes a big-endian float32 starting at off.
func Float32At(b []byte, off int) (float32, bool) {
	v, ok := Int32At(b, off)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(uint32(v)), true
}

// Float64At decodes a big-endian float64 starting at off.
func Float64At(b []byte, off int) (float64, bool) {
	v, ok := Int64At(b, off)
	if !ok {
		return 0, false
	}
	return math.Float64frombits(uint64(v)), true
}

func fits(b []byte, off, n int) bool {
	return off >= 0 && len(b)-off >= n
}
