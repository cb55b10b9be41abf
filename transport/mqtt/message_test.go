package mqtt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ble "github.com/HubbellCorp/SweetBlue-sub005"
)

func TestEncodeDecode(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	a := ble.Advertisement{
		Addr:      ble.NewAddr("AA:BB:CC:DD:EE:FF"),
		RSSI:      -71,
		EventType: ble.AdvNonconnInd,
		Data:      []byte{0x02, 0x01, 0x06},
		Timestamp: ts,
	}
	b, err := Encode(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"addr": "aa:bb:cc:dd:ee:ff",
		"rssi": -71,
		"event_type": "ADV_NONCONN_IND",
		"data": "020106",
		"timestamp": 1700000000123
	}`, string(b))

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, a.Addr.String(), got.Addr.String())
	assert.Equal(t, a.RSSI, got.RSSI)
	assert.Equal(t, a.EventType, got.EventType)
	assert.Equal(t, a.Data, got.Data)
	assert.True(t, ts.Equal(got.Timestamp))
	f, _ := got.Record().Flags()
	assert.Equal(t, byte(0x06), f)
}

func TestEncodeNoAddr(t *testing.T) {
	_, err := Encode(ble.Advertisement{})
	assert.Error(t, err)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{`},
		{"no addr", `{"event_type":"ADV_IND","data":"020106"}`},
		{"bad event type", `{"addr":"a","event_type":"ADV_FOO","data":"020106"}`},
		{"bad hex", `{"addr":"a","event_type":"ADV_IND","data":"0g"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestDecodeNoTimestamp(t *testing.T) {
	a, err := Decode([]byte(`{"addr":"a","event_type":"SCAN_RSP","data":""}`))
	require.NoError(t, err)
	assert.True(t, a.Timestamp.IsZero())
	assert.Equal(t, ble.ScanRsp, a.EventType)
	assert.Empty(t, a.Data)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.Topic = ""
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.QoS = 3
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Timeout = 0
	assert.Error(t, c.Validate())

	_, err := New(Config{})
	assert.Error(t, err)
}
