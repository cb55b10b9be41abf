package ble

import (
	"strings"
	"time"

	"github.com/HubbellCorp/SweetBlue-sub005/adv"
	"github.com/HubbellCorp/SweetBlue-sub005/uuid"
)

// AdvHandler handles advertisement.
type AdvHandler func(a Advertisement)

// AdvFilter returns true if the advertisement matches specified condition.
type AdvFilter func(a Advertisement) bool

// Advertisement is a discovery event: the raw advertising data of a remote
// device and what the receiver observed about it.
type Advertisement struct {
	Addr      Addr
	RSSI      int
	EventType EventType
	Data      []byte
	Timestamp time.Time
}

// Connectable reports whether the advertisement was sent in a connectable PDU.
func (a Advertisement) Connectable() bool {
	return a.EventType == AdvInd || a.EventType == AdvDirectInd
}

// Record parses the advertising data. A nil Data yields adv.Null.
func (a Advertisement) Record() *adv.ScanRecord {
	return adv.Parse(a.Data)
}

// LocalName returns the local name carried in the advertising data.
func (a Advertisement) LocalName() string {
	return a.Record().Name()
}

// Filtered returns a handler that passes to h only the advertisements
// accepted by every filter. Nil filters accept everything.
func Filtered(h AdvHandler, ff ...AdvFilter) AdvHandler {
	return func(a Advertisement) {
		for _, f := range ff {
			if f != nil && !f(a) {
				return
			}
		}
		h(a)
	}
}

// FilterName accepts advertisements whose local name equals n, ignoring case.
func FilterName(n string) AdvFilter {
	return func(a Advertisement) bool {
		return strings.EqualFold(a.LocalName(), n)
	}
}

// FilterUUID accepts advertisements that carry u as a service UUID or as a
// service data key.
func FilterUUID(u uuid.UUID) AdvFilter {
	return func(a Advertisement) bool {
		return a.Record().HasUUID(u)
	}
}

// FilterAddr accepts advertisements sent by want.
func FilterAddr(want Addr) AdvFilter {
	return func(a Advertisement) bool {
		return SameAddr(a.Addr, want)
	}
}
