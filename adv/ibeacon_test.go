package adv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIBeacon(t *testing.T) {
	r := IBeacon(custom, 1, 0xBEEF, -59)
	require.False(t, r.IsNull())
	assert.False(t, r.IsConnectable())
	assert.Equal(t, AppleCompanyID, r.ManufacturerID())

	b, err := Build(r, OptMaxLength(MaxEIRPacketLength))
	require.NoError(t, err)
	assert.Len(t, b, 30)
	assert.Equal(t, []byte{0x02, 0x01, 0x06, 0x1A, 0xFF, 0x4C, 0x00, 0x02, 0x15}, b[:9])
	assert.Equal(t, custom[:], b[9:25])

	u, major, minor, pwr, ok := IBeaconFields(Parse(b))
	require.True(t, ok)
	assert.Equal(t, custom, u)
	assert.Equal(t, uint16(1), major)
	assert.Equal(t, uint16(0xBEEF), minor)
	assert.Equal(t, int8(-59), pwr)
}

func TestIBeaconFromData(t *testing.T) {
	assert.True(t, IBeaconFromData([]byte{0x02, 0x15}).IsNull())

	_, _, _, _, ok := IBeaconFields(NewScanRecord().AddManufacturerData(AppleCompanyID, []byte{1, 2}))
	assert.False(t, ok)
	_, _, _, _, ok = IBeaconFields(Null)
	assert.False(t, ok)
}
