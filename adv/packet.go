package adv

import (
	"github.com/HubbellCorp/SweetBlue-sub005/byteutil"
	"github.com/HubbellCorp/SweetBlue-sub005/uuid"
)

// Packet is an utility to craft or inspect raw advertising data.
// Refer to Supplement to Bluetooth Core Specification | CSSv6, Part A
type Packet []byte

// Field returns the payload (excluding the length and type byte) of the first
// field of type typ. It returns nil if no such field is found before the
// data ends or turns out to be malformed.
func (p Packet) Field(typ byte) []byte {
	b := p
	for len(b) >= 2 {
		l, t := int(b[0]), b[1]
		if l == 0 || len(b) < 1+l {
			return nil
		}
		if t == typ {
			return b[2 : 1+l]
		}
		b = b[1+l:]
	}
	return nil
}

// AppendField appends a field with type typ and payload b.
// A payload longer than MaxFieldLength is cut short.
func (p Packet) AppendField(typ byte, b []byte) Packet {
	if len(b) > MaxFieldLength {
		b = b[:MaxFieldLength]
	}
	p = append(p, byte(len(b)+1), typ)
	return append(p, b...)
}

// AppendFlags appends a flags field.
func (p Packet) AppendFlags(f byte) Packet {
	return p.AppendField(Flags, []byte{f})
}

// AppendName appends a shortened or complete local name field.
func (p Packet) AppendName(n string, short bool) Packet {
	if short {
		return p.AppendField(ShortName, []byte(n))
	}
	return p.AppendField(CompleteName, []byte(n))
}

// AppendTxPower appends a TX power level field.
func (p Packet) AppendTxPower(pwr int8) Packet {
	return p.AppendField(TxPower, []byte{byte(pwr)})
}

// AppendUUID appends a service UUID list field holding u at width w.
func (p Packet) AppendUUID(u uuid.UUID, w uuid.Width, complete bool) Packet {
	return p.AppendField(uuidListTag(w, complete), uuid.ToBytes(u, w))
}

// AppendServiceData appends a 16-bit service data field. A Nil u writes the
// data with no UUID in front of it.
func (p Packet) AppendServiceData(u uuid.UUID, data []byte) Packet {
	if u == uuid.Nil {
		return p.AppendField(ServiceData16, data)
	}
	return p.AppendField(ServiceData16, append(uuid.ToBytes(u, uuid.Short), data...))
}

// AppendManufacturerData appends a manufacturer data field.
func (p Packet) AppendManufacturerData(id uint16, b []byte) Packet {
	d := byteutil.Int16ToBytes(int16(id))
	byteutil.Reverse(d)
	return p.AppendField(ManufacturerData, append(d, b...))
}

// Data returns the packet as a fixed size advertising payload.
func (p Packet) Data() [MaxEIRPacketLength]byte {
	b := [MaxEIRPacketLength]byte{}
	copy(b[:], p)
	return b
}

// Len ...
func (p Packet) Len() int {
	return len(p)
}

func uuidListTag(w uuid.Width, complete bool) byte {
	switch w {
	case uuid.Short:
		if complete {
			return AllUUID16
		}
		return SomeUUID16
	case uuid.Medium:
		if complete {
			return AllUUID32
		}
		return SomeUUID32
	}
	if complete {
		return AllUUID128
	}
	return SomeUUID128
}

func serviceDataWidth(typ byte) uuid.Width {
	switch typ {
	case ServiceData32:
		return uuid.Medium
	case ServiceData128:
		return uuid.Full
	}
	return uuid.Short
}

func uuidListWidth(typ byte) uuid.Width {
	switch typ {
	case SomeUUID32, AllUUID32:
		return uuid.Medium
	case SomeUUID128, AllUUID128:
		return uuid.Full
	}
	return uuid.Short
}
