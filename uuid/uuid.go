// Package uuid maps between 128-bit UUIDs and the 16 and 32-bit short forms
// Bluetooth derives from the Base UUID, and encodes them the way they appear
// in advertising data.
package uuid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	guuid "github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/HubbellCorp/SweetBlue-sub005/byteutil"
)

// A UUID is a 128-bit UUID. Short forms are always held expanded.
type UUID = guuid.UUID

// Nil is the zero UUID.
var Nil = guuid.Nil

// Base is the Bluetooth Base UUID. Short UUIDs occupy bits 96..127 of it.
var Base = guuid.MustParse("00000000-0000-1000-8000-00805F9B34FB")

// ErrInvalidLength is returned when a byte form is not 2, 4 or 16 bytes long.
var ErrInvalidLength = errors.New("uuid: invalid length")

// Width is the number of bytes a UUID occupies on the air.
type Width int

// Widths of a UUID on the air.
const (
	Short  Width = 2
	Medium Width = 4
	Full   Width = 16
)

// Len returns the number of bytes of w.
func (w Width) Len() int { return int(w) }

func (w Width) String() string {
	switch w {
	case Short:
		return "16-bit"
	case Medium:
		return "32-bit"
	case Full:
		return "128-bit"
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

// WidthOf returns the Width that encodes into n bytes.
func WidthOf(n int) (Width, error) {
	switch w := Width(n); w {
	case Short, Medium, Full:
		return w, nil
	}
	return 0, errors.Wrapf(ErrInvalidLength, "got %d bytes, want 2, 4 or 16", n)
}

func msb(u UUID) uint64 { return binary.BigEndian.Uint64(u[:8]) }
func lsb(u UUID) uint64 { return binary.BigEndian.Uint64(u[8:]) }

func fromHalves(hi, lo uint64) UUID {
	var u UUID
	binary.BigEndian.PutUint64(u[:8], hi)
	binary.BigEndian.PutUint64(u[8:], lo)
	return u
}

// Expand returns the full UUID of the short value v.
// v is truncated to 16 bits for the Short width. Full is treated as Medium.
func Expand(v uint32, w Width) UUID {
	if w == Short {
		v = uint32(uint16(v))
	}
	return fromHalves(msb(Base)+uint64(v)<<32, lsb(Base))
}

// Narrow returns the candidate short value of u at width w: bits 96..111 for
// Short, bits 96..127 otherwise. It does not check that u is Shortenable.
func Narrow(u UUID, w Width) uint32 {
	v := uint32(msb(u) >> 32)
	if w == Short {
		return uint32(uint16(v))
	}
	return v
}

// Shortenable reports whether u survives a round trip through width w.
// Every UUID is shortenable to Full.
func Shortenable(u UUID, w Width) bool {
	if w == Full {
		return true
	}
	return Expand(Narrow(u, w), w) == u
}

// ShortestWidth returns the narrowest width u can be encoded at.
func ShortestWidth(u UUID) Width {
	switch {
	case Shortenable(u, Short):
		return Short
	case Shortenable(u, Medium):
		return Medium
	}
	return Full
}

// UUID16 returns the full form of a 16-bit UUID such as 0x180F.
func UUID16(v uint16) UUID { return Expand(uint32(v), Short) }

// UUID32 returns the full form of a 32-bit UUID.
func UUID32(v uint32) UUID { return Expand(v, Medium) }

// ToBytes encodes u at width w as it appears on the air: the short value in
// little-endian order, or for Full the low 64 bits followed by the high 64
// bits, each little-endian. Short and Medium do not verify that u is
// Shortenable; a UUID that is not encodes to the wrong value.
func ToBytes(u UUID, w Width) []byte {
	switch w {
	case Short:
		b := byteutil.Int16ToBytes(int16(Narrow(u, Short)))
		byteutil.Reverse(b)
		return b
	case Medium:
		b := byteutil.Int32ToBytes(int32(Narrow(u, Medium)))
		byteutil.Reverse(b)
		return b
	}
	lo := byteutil.Int64ToBytes(int64(lsb(u)))
	hi := byteutil.Int64ToBytes(int64(msb(u)))
	byteutil.Reverse(lo)
	byteutil.Reverse(hi)
	return append(lo, hi...)
}

// FromBytes decodes the on-air form of a UUID. The width is taken from len(b).
func FromBytes(b []byte) (UUID, error) {
	switch len(b) {
	case Short.Len():
		return Expand(uint32(binary.LittleEndian.Uint16(b)), Short), nil
	case Medium.Len():
		return Expand(binary.LittleEndian.Uint32(b), Medium), nil
	case Full.Len():
		return fromHalves(binary.LittleEndian.Uint64(b[8:]), binary.LittleEndian.Uint64(b[:8])), nil
	}
	return Nil, errors.Wrapf(ErrInvalidLength, "got %d bytes, want 2, 4 or 16", len(b))
}

// Parse parses "180F", "0000180F" or a standard 36 (or 32) character UUID.
func Parse(s string) (UUID, error) {
	h := strings.Replace(strings.TrimSpace(s), "-", "", -1)
	switch len(h) {
	case 4, 8:
		b, err := hex.DecodeString(h)
		if err != nil {
			return Nil, errors.Wrapf(err, "can't parse uuid %q", s)
		}
		return FromBytes(byteutil.Reversed(b))
	case 32:
		u, err := guuid.Parse(h)
		return u, errors.Wrapf(err, "can't parse uuid %q", s)
	}
	return Nil, errors.Errorf("can't parse uuid %q: want 4, 8 or 32 hex digits", s)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// ShortString renders u in its shortest form: "180f", "abcd0001", or the
// standard 36 character form.
func ShortString(u UUID) string {
	switch ShortestWidth(u) {
	case Short:
		return fmt.Sprintf("%04x", Narrow(u, Short))
	case Medium:
		return fmt.Sprintf("%08x", Narrow(u, Medium))
	}
	return u.String()
}

// Contains reports whether u is in s. A nil s matches every UUID.
func Contains(s []UUID, u UUID) bool {
	if s == nil {
		return true
	}
	for _, a := range s {
		if a == u {
			return true
		}
	}
	return false
}
