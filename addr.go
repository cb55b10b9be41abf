package ble

import "strings"

// Addr represents a network end point address.
// It's MAC address on Linux or Device UUID on OS X.
type Addr interface {
	String() string
}

// NewAddr creates an Addr from string. Addresses compare case-insensitively.
func NewAddr(s string) Addr {
	return addr(strings.ToLower(strings.TrimSpace(s)))
}

type addr string

func (a addr) String() string {
	return string(a)
}

// SameAddr reports whether a and b name the same device.
func SameAddr(a, b Addr) bool {
	if a == nil || b == nil {
		return a == b
	}
	return strings.EqualFold(a.String(), b.String())
}
