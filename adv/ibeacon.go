package adv

import (
	"github.com/HubbellCorp/SweetBlue-sub005/byteutil"
	"github.com/HubbellCorp/SweetBlue-sub005/uuid"
)

// AppleCompanyID is the manufacturer id iBeacon data is sent under.
const AppleCompanyID = 0x004C

const iBeaconLen = 23

// IBeaconFromData returns an iBeacon record with the specified manufacturer data.
// It returns Null if md is not 23 bytes long.
func IBeaconFromData(md []byte) *ScanRecord {
	if len(md) != iBeaconLen {
		return Null
	}
	return NewScanRecord().
		SetFlags(FlagGeneralDiscoverable|FlagLEOnly).
		AddManufacturerData(AppleCompanyID, md).
		SetOptions()
}

// IBeacon returns an iBeacon record with specified parameters.
// Unlike service UUIDs, the proximity UUID is sent big-endian.
func IBeacon(u uuid.UUID, major, minor uint16, pwr int8) *ScanRecord {
	md := make([]byte, 0, iBeaconLen)
	md = append(md, 0x02, 0x15) // type iBeacon, 21 bytes follow
	md = append(md, u[:]...)
	md = append(md, byteutil.Int16ToBytes(int16(major))...)
	md = append(md, byteutil.Int16ToBytes(int16(minor))...)
	md = append(md, byte(pwr)) // measured power at 1m
	return IBeaconFromData(md)
}

// IBeaconFields decodes the manufacturer data of an iBeacon record.
func IBeaconFields(r *ScanRecord) (u uuid.UUID, major, minor uint16, pwr int8, ok bool) {
	if r.ManufacturerID() != AppleCompanyID {
		return
	}
	md := r.ManufacturerData()
	if len(md) != iBeaconLen || md[0] != 0x02 || md[1] != 0x15 {
		return
	}
	copy(u[:], md[2:18])
	ma, _ := byteutil.Int16At(md, 18)
	mi, _ := byteutil.Int16At(md, 20)
	return u, uint16(ma), uint16(mi), int8(md[22]), true
}
