package byteutil

// Reverse reverses b in place.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Reversed returns a reversed copy of b.
func Reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i := range b {
		r[len(b)-1-i] = b[i]
	}
	return r
}

// Sub returns a copy of src[begin:end].
// It reports false if the range does not lie within src.
func Sub(src []byte, begin, end int) ([]byte, bool) {
	if begin < 0 || end < begin || end > len(src) {
		return nil, false
	}
	dst := make([]byte, end-begin)
	copy(dst, src[begin:end])
	return dst, true
}

// SubFrom returns a copy of src[begin:].
func SubFrom(src []byte, begin int) ([]byte, bool) {
	return Sub(src, begin, len(src))
}

// IsEmpty reports whether b has no bytes.
func IsEmpty(b []byte) bool { return len(b) == 0 }

// Copy copies n bytes from src[srcOff:] to dst[dstOff:].
// Nothing is copied, and false is returned, if either range is out of bounds.
func Copy(dst, src []byte, n, dstOff, srcOff int) bool {
	if n < 0 || dstOff < 0 || srcOff < 0 || n+dstOff > len(dst) || n+srcOff > len(src) {
		return false
	}
	copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])
	return true
}

// Fill sets n bytes of b, starting at off, to v.
func Fill(b []byte, v byte, off, n int) bool {
	if off < 0 || n < 0 || off+n > len(b) {
		return false
	}
	for i := off; i < off+n; i++ {
		b[i] = v
	}
	return true
}

// Equal reports whether the first n bytes of a and b match.
// Slices shorter than n never match.
func Equal(a, b []byte, n int) bool {
	if len(a) < n || len(b) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare orders the first n bytes of a and b, treating bytes as unsigned.
// The result is negative, zero or positive. A slice that runs out before
// n bytes sorts before one that does not.
func Compare(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a) && i >= len(b):
			return 0
		case i >= len(a):
			return -1
		case i >= len(b):
			return 1
		case a[i] != b[i]:
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

// BoolToByte returns 0x01 for true and 0x00 for false.
func BoolToByte(v bool) byte {
	if v {
		return 0x01
	}
	return 0x00
}

// ByteToBool reports whether v is non-zero.
func ByteToBool(v byte) bool { return v != 0x00 }

// ByteToBoolAt reads b[off] as a bool.
func ByteToBoolAt(b []byte, off int) (bool, bool) {
	if off < 0 || off >= len(b) {
		return false, false
	}
	return b[off] != 0x00, true
}
