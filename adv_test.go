package ble

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HubbellCorp/SweetBlue-sub005/adv"
	"github.com/HubbellCorp/SweetBlue-sub005/uuid"
)

var battery = uuid.UUID16(0x180F)

func widget(t *testing.T) []byte {
	b, err := adv.Build(adv.NewScanRecord().
		SetFlags(0x06).
		SetName("Widget").
		AddServiceUUID(battery))
	require.NoError(t, err)
	return b
}

func TestAdvertisement(t *testing.T) {
	a := Advertisement{Addr: NewAddr("AA:BB:CC:DD:EE:FF"), RSSI: -60, EventType: AdvInd, Data: widget(t)}
	assert.True(t, a.Connectable())
	assert.Equal(t, "Widget", a.LocalName())
	assert.True(t, a.Record().HasUUID(battery))
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", a.Addr.String())

	a.EventType = ScanRsp
	assert.False(t, a.Connectable())

	a.Data = nil
	assert.True(t, a.Record().IsNull())
	assert.Equal(t, "", a.LocalName())
}

func TestEventType(t *testing.T) {
	assert.Equal(t, "ADV_NONCONN_IND", AdvNonconnInd.String())
	assert.Equal(t, "EventType(0x09)", EventType(9).String())

	et, ok := ParseEventType("ADV_DIRECT_IND")
	require.True(t, ok)
	assert.Equal(t, AdvDirectInd, et)
	_, ok = ParseEventType("ADV_FOO")
	assert.False(t, ok)
}

func TestFilters(t *testing.T) {
	a := Advertisement{Addr: NewAddr("aa:bb:cc:dd:ee:ff"), Data: widget(t)}

	assert.True(t, FilterName("WIDGET")(a))
	assert.False(t, FilterName("Gadget")(a))
	assert.True(t, FilterUUID(battery)(a))
	assert.False(t, FilterUUID(uuid.UUID16(0x180D))(a))
	assert.True(t, FilterAddr(NewAddr("AA:BB:CC:DD:EE:FF"))(a))
	assert.False(t, FilterAddr(NewAddr("11:22:33:44:55:66"))(a))

	var got []Advertisement
	h := Filtered(func(a Advertisement) { got = append(got, a) }, FilterName("widget"), nil)
	h(a)
	h(Advertisement{Data: []byte{0x02, 0x01, 0x06}})
	require.Len(t, got, 1)
	assert.Equal(t, a.Addr, got[0].Addr)
}

type fakeScanner []Advertisement

func (s fakeScanner) Scan(ctx context.Context, h AdvHandler) error {
	for _, a := range s {
		h(a)
	}
	<-ctx.Done()
	return ctx.Err()
}

type fakeAdvertiser struct {
	sent [][]byte
	err  error
}

func (f *fakeAdvertiser) Advertise(ctx context.Context, b []byte) error {
	f.sent = append(f.sent, b)
	return f.err
}

func TestScan(t *testing.T) {
	s := fakeScanner{
		{Addr: NewAddr("a"), Data: widget(t)},
		{Addr: NewAddr("b")},
	}
	ctx, cancel := context.WithCancel(context.Background())
	var got []string
	err := Scan(ctx, s, func(a Advertisement) {
		got = append(got, a.Addr.String())
		cancel()
	}, FilterUUID(battery))
	assert.Equal(t, context.Canceled, errors.Cause(err))
	assert.Equal(t, []string{"a"}, got)
}

func TestAdvertise(t *testing.T) {
	f := &fakeAdvertiser{}
	r := adv.NewScanRecord().SetFlags(0x06).SetName("Widget").SetTxPower(-4)
	require.NoError(t, Advertise(context.Background(), f, r))
	require.Len(t, f.sent, 1)
	assert.Equal(t, []byte{0x02, 0x01, 0x06, 0x07, 0x09, 'W', 'i', 'd', 'g', 'e', 't', 0x02, 0x0A, 0xFC}, f.sent[0])

	assert.Error(t, Advertise(context.Background(), f, adv.Null))

	r.SetName("a long name that does not fit in a legacy packet")
	err := Advertise(context.Background(), f, r, adv.OptMaxLength(adv.MaxEIRPacketLength))
	assert.Equal(t, adv.ErrEIRPacketTooLong, errors.Cause(err))

	f.err = errors.New("broker down")
	err = Advertise(context.Background(), f, adv.NewScanRecord().SetFlags(0x06))
	assert.EqualError(t, err, "can't advertise: broker down")
}
