// Package segment builds the data segments (numeric, alphanumeric, byte)
// that make up a QR Code's payload, plus the ECI header that precedes a
// byte-mode segment when the text isn't plain ISO-8859-1. Each segment
// writes its bits directly into a caller-supplied bitbuf.Buffer.
package segment

import "github.com/lumenqr/qrcore/version"

// Mode describes how a segment's data bits are interpreted.
type Mode uint32

const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
	// Eci marks a header segment announcing a non-default character set.
	// It carries no character count field.
	Eci
)

// Indicator returns the 4-bit mode indicator value.
func (m Mode) Indicator() uint32 {
	switch m {
	case Numeric:
		return 0x1
	case Alphanumeric:
		return 0x2
	case Byte:
		return 0x4
	case Kanji:
		return 0x8
	case Eci:
		return 0x7
	default:
		panic("segment: unknown Mode")
	}
}

// CountBits returns the bit width of the character count field for a
// segment in this mode at the given version. The result is in [0, 16];
// zero means the mode has no count field at all.
func (m Mode) CountBits(ver version.Version) uint8 {
	var widths [3]uint8
	switch m {
	case Numeric:
		widths = [3]uint8{10, 12, 14}
	case Alphanumeric:
		widths = [3]uint8{9, 11, 13}
	case Byte:
		widths = [3]uint8{8, 16, 16}
	case Kanji:
		widths = [3]uint8{8, 10, 12}
	case Eci:
		widths = [3]uint8{0, 0, 0}
	default:
		panic("segment: unknown Mode")
	}
	idx := (ver.Value() + 7) / 17
	return widths[idx]
}
