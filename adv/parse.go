package adv

import (
	"unicode/utf8"

	"github.com/HubbellCorp/SweetBlue-sub005/byteutil"
	"github.com/HubbellCorp/SweetBlue-sub005/uuid"
)

// Parse decodes raw advertising data. A nil b yields Null.
//
// Parse never fails. Devices in the field send truncated and corrupt data, so
// parsing stops at the first field that runs past the end of b and whatever
// was decoded before it is returned. Malformed fields are skipped and fields
// of unknown type are ignored.
func Parse(b []byte) *ScanRecord {
	if b == nil {
		return Null
	}
	r := NewScanRecord()
	for pos := 0; pos < len(b); {
		l := int(b[pos])
		pos++
		if l == 0 {
			break
		}
		// A length with only a type byte, or nothing, behind it.
		if len(b)-pos < 2 {
			logger.Debug("parse: truncated field header", "offset", pos-1)
			break
		}
		typ := b[pos]
		pos++
		n := l - 1
		d, ok := byteutil.Sub(b, pos, pos+n)
		if !ok {
			logger.Debug("parse: truncated field", "type", TagName(typ), "want", n, "have", len(b)-pos)
			break
		}
		r.parseField(typ, d)
		pos += n
	}
	return r
}

func (r *ScanRecord) parseField(typ byte, d []byte) {
	switch typ {
	case Flags:
		if len(d) < 1 {
			logger.Debug("parse: empty flags")
			return
		}
		r.SetFlags(d[0])

	case SomeUUID16, SomeUUID32, SomeUUID128, AllUUID16, AllUUID32, AllUUID128:
		if typ == AllUUID16 || typ == AllUUID32 || typ == AllUUID128 {
			r.complete = true
		}
		w := uuidListWidth(typ)
		for len(d) >= w.Len() {
			u, _ := uuid.FromBytes(d[:w.Len()])
			r.AddServiceUUIDWidth(u, w)
			d = d[w.Len():]
		}
		if len(d) > 0 {
			logger.Debug("parse: trailing bytes in uuid list", "type", TagName(typ), "n", len(d))
		}

	case ShortName, CompleteName:
		if !utf8.Valid(d) {
			logger.Debug("parse: unable to parse name", "type", TagName(typ))
			return
		}
		r.setName(string(d), typ == ShortName)

	case TxPower:
		if len(d) < 1 {
			logger.Debug("parse: empty tx power")
			return
		}
		r.SetTxPower(int8(d[0]))

	case ServiceData16, ServiceData32, ServiceData128:
		w := serviceDataWidth(typ)
		if len(d) < w.Len() {
			logger.Debug("parse: unable to parse service data", "type", TagName(typ), "n", len(d))
			return
		}
		u, _ := uuid.FromBytes(d[:w.Len()])
		r.AddServiceData(u, d[w.Len():])

	case ManufacturerData:
		if len(d) < 2 {
			logger.Debug("parse: unable to parse manufacturer data", "n", len(d))
			return
		}
		id := byteutil.Reversed(d[:2])
		r.AddManufacturerData(uint16(byteutil.BytesToInt16(id)), d[2:])

	default:
		// Ignore unsupported types.
	}
}

// ParseName returns the first non-empty complete local name in b.
func ParseName(b []byte) (string, bool) {
	for p := Packet(b); len(p) >= 2; {
		l := int(p[0])
		if l == 0 || len(p) < 1+l {
			return "", false
		}
		if p[1] == CompleteName && l > 1 {
			return string(p[2 : 1+l]), true
		}
		p = p[1+l:]
	}
	return "", false
}
