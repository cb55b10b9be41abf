package adv

import "strings"

// Bits of the Flags field [CSS v6, Part A, 1.3].
const (
	FlagLimitedDiscoverable = 0x01 // LE Limited Discoverable Mode
	FlagGeneralDiscoverable = 0x02 // LE General Discoverable Mode
	FlagLEOnly              = 0x04 // BR/EDR Not Supported.
	FlagBothController      = 0x08 // Simultaneous LE and BR/EDR to Same Device Capable (Controller).
	FlagBothHost            = 0x10 // Simultaneous LE and BR/EDR to Same Device Capable (Host).
)

var flagNames = []struct {
	bit  byte
	name string
}{
	{FlagLimitedDiscoverable, "LimitedDiscoverable"},
	{FlagGeneralDiscoverable, "GeneralDiscoverable"},
	{FlagLEOnly, "LEOnly"},
	{FlagBothController, "BothController"},
	{FlagBothHost, "BothHost"},
}

// FlagsString renders the set bits of f, e.g. "GeneralDiscoverable|LEOnly".
// Reserved bits show up as "Reserved".
func FlagsString(f byte) string {
	var s []string
	rest := f
	for _, n := range flagNames {
		if f&n.bit != 0 {
			s = append(s, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		s = append(s, "Reserved")
	}
	if len(s) == 0 {
		return "None"
	}
	return strings.Join(s, "|")
}
