package adv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketField(t *testing.T) {
	p := Packet(widget)
	assert.Equal(t, []byte("Widget"), p.Field(CompleteName))
	assert.Equal(t, []byte{0xFC}, p.Field(TxPower))
	assert.Nil(t, p.Field(ManufacturerData))

	// Malformed data stops the search.
	p = Packet{0x02, 0x01, 0x06, 0x09, 0x09, 'W'}
	assert.Nil(t, p.Field(CompleteName))
}

func TestPacketAppend(t *testing.T) {
	p := Packet{}.
		AppendFlags(FlagGeneralDiscoverable | FlagLEOnly).
		AppendName("Widget", false).
		AppendTxPower(-4)
	assert.Equal(t, Packet(widget), p)
	assert.Equal(t, len(widget), p.Len())

	d := p.Data()
	assert.Equal(t, widget, d[:len(widget)])
	assert.Equal(t, make([]byte, MaxEIRPacketLength-len(widget)), d[len(widget):])
}

func TestPacketAppendServiceData(t *testing.T) {
	p := Packet{}.AppendServiceData(battery, []byte{100})
	assert.Equal(t, Packet{0x04, 0x16, 0x0F, 0x18, 100}, p)
	assert.Equal(t, []byte{0x0F, 0x18, 100}, p.Field(ServiceData16))
}

func TestPacketAppendManufacturerData(t *testing.T) {
	p := Packet{}.AppendManufacturerData(0x1234, []byte{9})
	assert.Equal(t, Packet{0x04, 0xFF, 0x34, 0x12, 9}, p)
}

func TestTagName(t *testing.T) {
	assert.Equal(t, "Complete Local Name", TagName(CompleteName))
	assert.Equal(t, "Unknown(0x19)", TagName(0x19))
	assert.True(t, Known(ServiceData128))
	assert.False(t, Known(0x19))
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "None", FlagsString(0))
	assert.Equal(t, "GeneralDiscoverable|LEOnly", FlagsString(0x06))
	assert.Equal(t, "LimitedDiscoverable|Reserved", FlagsString(0x81))
}
