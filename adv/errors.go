package adv

import "github.com/pkg/errors"

var (
	// ErrEIRPacketTooLong is returned when a built packet exceeds the
	// configured maximum length.
	ErrEIRPacketTooLong = errors.New("adv: packet too long")

	// ErrFieldTooLong is returned when a field payload exceeds MaxFieldLength.
	ErrFieldTooLong = errors.New("adv: field too long")

	// ErrNotShortenable is returned by a strict build when a UUID is asked to be
	// written at a width it cannot be represented at.
	ErrNotShortenable = errors.New("adv: uuid not shortenable")
)
