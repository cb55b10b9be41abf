package mqtt

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	ble "github.com/HubbellCorp/SweetBlue-sub005"
)

// Message is the wire form of an advertisement.
type Message struct {
	Addr      string `json:"addr"`
	RSSI      int    `json:"rssi"`
	EventType string `json:"event_type"`
	Data      string `json:"data"`      // hex
	Timestamp int64  `json:"timestamp"` // unix ms
}

// Encode marshals a into a message payload.
func Encode(a ble.Advertisement) ([]byte, error) {
	if a.Addr == nil {
		return nil, errors.New("advertisement has no address")
	}
	m := Message{
		Addr:      a.Addr.String(),
		RSSI:      a.RSSI,
		EventType: a.EventType.String(),
		Data:      hex.EncodeToString(a.Data),
	}
	if !a.Timestamp.IsZero() {
		m.Timestamp = a.Timestamp.UnixMilli()
	}
	b, err := json.Marshal(m)
	return b, errors.Wrap(err, "can't marshal advertisement")
}

// Decode unmarshals a message payload. A missing timestamp decodes to the
// zero time.
func Decode(b []byte) (ble.Advertisement, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return ble.Advertisement{}, errors.Wrap(err, "can't unmarshal advertisement")
	}
	if m.Addr == "" {
		return ble.Advertisement{}, errors.New("addr is required")
	}
	et, ok := ble.ParseEventType(m.EventType)
	if !ok {
		return ble.Advertisement{}, errors.Errorf("invalid event_type %q", m.EventType)
	}
	d, err := hex.DecodeString(m.Data)
	if err != nil {
		return ble.Advertisement{}, errors.Wrap(err, "invalid data")
	}
	a := ble.Advertisement{
		Addr:      ble.NewAddr(m.Addr),
		RSSI:      m.RSSI,
		EventType: et,
		Data:      d,
	}
	if m.Timestamp != 0 {
		a.Timestamp = time.UnixMilli(m.Timestamp)
	}
	return a, nil
}
