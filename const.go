package ble

import "fmt"

// EventType is the PDU type an advertisement was received in.
type EventType uint8

// Event Types [Vol 6 Part B, 2.3 Advertising PDU, 4.4.2].
const (
	AdvInd        EventType = 0x00 // Connectable undirected advertising (ADV_IND).
	AdvDirectInd  EventType = 0x01 // Connectable directed advertising (ADV_DIRECT_IND).
	AdvScanInd    EventType = 0x02 // Scannable undirected advertising (ADV_SCAN_IND).
	AdvNonconnInd EventType = 0x03 // Non connectable undirected advertising (ADV_NONCONN_IND).
	ScanRsp       EventType = 0x04 // Scan Response (SCAN_RSP).
)

var eventTypeNames = map[EventType]string{
	AdvInd:        "ADV_IND",
	AdvDirectInd:  "ADV_DIRECT_IND",
	AdvScanInd:    "ADV_SCAN_IND",
	AdvNonconnInd: "ADV_NONCONN_IND",
	ScanRsp:       "SCAN_RSP",
}

func (t EventType) String() string {
	if n, ok := eventTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("EventType(0x%02X)", uint8(t))
}

// ParseEventType returns the EventType named s, as rendered by String.
func ParseEventType(s string) (EventType, bool) {
	for t, n := range eventTypeNames {
		if n == s {
			return t, true
		}
	}
	return 0, false
}
