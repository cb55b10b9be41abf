package adv

import "fmt"

// MaxEIRPacketLength is the maximum allowed AdvertisingPacket
// and ScanResponsePacket length.
const MaxEIRPacketLength = 31

// MaxFieldLength is the largest payload a single field can carry; the
// length byte also counts the type byte.
const MaxFieldLength = 0xFF - 1

// Advertising data types [CSS v6, Part A, 1].
// Types not listed in tagNames are skipped by Parse and never written by Build.
const (
	Flags            = 0x01 // Flags
	SomeUUID16       = 0x02 // Incomplete List of 16-bit Service Class UUIDs
	AllUUID16        = 0x03 // Complete List of 16-bit Service Class UUIDs
	SomeUUID32       = 0x04 // Incomplete List of 32-bit Service Class UUIDs
	AllUUID32        = 0x05 // Complete List of 32-bit Service Class UUIDs
	SomeUUID128      = 0x06 // Incomplete List of 128-bit Service Class UUIDs
	AllUUID128       = 0x07 // Complete List of 128-bit Service Class UUIDs
	ShortName        = 0x08 // Shortened Local Name
	CompleteName     = 0x09 // Complete Local Name
	TxPower          = 0x0A // Tx Power Level
	ServiceData16    = 0x16 // Service Data - 16-bit UUID
	ServiceData32    = 0x20 // Service Data - 32-bit UUID
	ServiceData128   = 0x21 // Service Data - 128-bit UUID
	ManufacturerData = 0xFF // Manufacturer Specific Data
)

var tagNames = map[byte]string{
	Flags:            "Flags",
	SomeUUID16:       "Incomplete 16-bit UUIDs",
	AllUUID16:        "Complete 16-bit UUIDs",
	SomeUUID32:       "Incomplete 32-bit UUIDs",
	AllUUID32:        "Complete 32-bit UUIDs",
	SomeUUID128:      "Incomplete 128-bit UUIDs",
	AllUUID128:       "Complete 128-bit UUIDs",
	ShortName:        "Shortened Local Name",
	CompleteName:     "Complete Local Name",
	TxPower:          "Tx Power Level",
	ServiceData16:    "Service Data 16-bit UUID",
	ServiceData32:    "Service Data 32-bit UUID",
	ServiceData128:   "Service Data 128-bit UUID",
	ManufacturerData: "Manufacturer Specific Data",
}

// TagName returns a readable name of an advertising data type.
func TagName(t byte) string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(0x%02X)", t)
}

// Known reports whether t is one of the types this package reads and writes.
func Known(t byte) bool {
	_, ok := tagNames[t]
	return ok
}
