package byteutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []int16{0, 1, -1, 0x1234, math.MinInt16, math.MaxInt16} {
		b := Int16ToBytes(v)
		require.Len(t, b, Int16Len)
		assert.Equal(t, v, BytesToInt16(b))
	}
	for _, v := range []int32{0, -1, 0x12345678, math.MinInt32, math.MaxInt32} {
		b := Int32ToBytes(v)
		require.Len(t, b, Int32Len)
		assert.Equal(t, v, BytesToInt32(b))
	}
	for _, v := range []int64{0, -1, 0x0102030405060708, math.MinInt64, math.MaxInt64} {
		b := Int64ToBytes(v)
		require.Len(t, b, Int64Len)
		assert.Equal(t, v, BytesToInt64(b))
	}
}

func TestBigEndianLayout(t *testing.T) {
	assert.Equal(t, []byte{0x12, 0x34}, Int16ToBytes(0x1234))
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, Int32ToBytes(0x12345678))
	assert.Equal(t, []byte{0xFF, 0xFC}, Int16ToBytes(-4))
}

func TestFloatRoundTripIsBitExact(t *testing.T) {
	for _, f := range []float32{0, -0, 1.5, -3.25, math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(-1))} {
		got := BytesToFloat32(Float32ToBytes(f))
		assert.Equal(t, math.Float32bits(f), math.Float32bits(got))
	}
	nan := math.Float64frombits(0x7FF8000000000001)
	for _, f := range []float64{0, math.Copysign(0, -1), 1.5, -1e300, math.MaxFloat64, nan} {
		got := BytesToFloat64(Float64ToBytes(f))
		assert.Equal(t, math.Float64bits(f), math.Float64bits(got))
	}
}

func TestShortInputDecodesPresentBytes(t *testing.T) {
	assert.Equal(t, int16(0x12), BytesToInt16([]byte{0x12}))
	assert.Equal(t, int32(0), BytesToInt32(nil))
}

func TestOffsetDecode(t *testing.T) {
	b := []byte{0x00, 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}

	v16, ok := Int16At(b, 1)
	require.True(t, ok)
	assert.Equal(t, int16(0x1234), v16)

	v32, ok := Int32At(b, 1)
	require.True(t, ok)
	assert.Equal(t, int32(0x12345678), v32)

	v64, ok := Int64At(b, 1)
	require.True(t, ok)
	assert.Equal(t, int64(0x123456789ABCDEF0), v64)

	tests := []struct {
		name string
		off  int
		fn   func([]byte, int) bool
	}{
		{"int16 past end", 8, func(b []byte, o int) bool { _, ok := Int16At(b, o); return ok }},
		{"int16 negative", -1, func(b []byte, o int) bool { _, ok := Int16At(b, o); return ok }},
		{"int32 past end", 6, func(b []byte, o int) bool { _, ok := Int32At(b, o); return ok }},
		{"int64 past end", 2, func(b []byte, o int) bool { _, ok := Int64At(b, o); return ok }},
		{"float32 past end", 6, func(b []byte, o int) bool { _, ok := Float32At(b, o); return ok }},
		{"float64 negative", -3, func(b []byte, o int) bool { _, ok := Float64At(b, o); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.fn(b, tt.off))
		})
	}
}

func TestFloatAt(t *testing.T) {
	b := append([]byte{0xAA}, Float32ToBytes(2.5)...)
	f, ok := Float32At(b, 1)
	require.True(t, ok)
	assert.Equal(t, float32(2.5), f)

	d, ok := Float64At(Float64ToBytes(-7.125), 0)
	require.True(t, ok)
	assert.Equal(t, -7.125, d)
}
