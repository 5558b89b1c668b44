package segment

import (
	"errors"

	"github.com/lumenqr/qrcore/bitbuf"
	"github.com/lumenqr/qrcore/version"
)

// ErrUnsupportedMode is returned when a caller asks for Kanji mode, which
// this library reserves but does not implement.
var ErrUnsupportedMode = errors.New("segment: Kanji mode is unsupported")

// ErrInvalidCharacter is returned by MakeNumeric/MakeAlphanumeric when text
// contains a character outside the mode's charset.
var ErrInvalidCharacter = errors.New("segment: text contains a character outside the mode's charset")

// alphanumericCharset maps each of the 45 legal alphanumeric characters to
// its index in the ISO/IEC 18004 alphanumeric table.
var alphanumericCharset = buildAlphanumericCharset()

func buildAlphanumericCharset() map[rune]uint32 {
	const chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	m := make(map[rune]uint32, len(chars))
	for i, c := range chars {
		m[c] = uint32(i)
	}
	return m
}

// Segment is an immutable, pre-sized piece of a QR Code's payload. BitLen
// reports exactly how many bits WriteTo will write, which lets the version
// selector size a candidate symbol before any bits are committed.
type Segment struct {
	mode     Mode
	numChars uint
	bitLen   int
	write    func(b *bitbuf.Buffer) error
}

// Mode returns the mode indicator of this segment.
func (s Segment) Mode() Mode { return s.mode }

// NumChars returns the character count field of this segment: characters
// for Numeric/Alphanumeric, bytes for Byte.
func (s Segment) NumChars() uint { return s.numChars }

// BitLen returns the number of bits this segment's payload occupies,
// excluding its mode indicator and character count field.
func (s Segment) BitLen() int { return s.bitLen }

// WriteTo writes this segment's payload bits into b, most significant bit
// first, without writing the mode indicator or character count field —
// callers write those separately per the assembler's field order.
func (s Segment) WriteTo(b *bitbuf.Buffer) error {
	return s.write(b)
}

// MakeNumeric returns a segment encoding text (which must contain only
// '0'-'9') in numeric mode: groups of 3 digits become 10 bits, a remaining
// 2 digits become 7 bits, 1 digit becomes 4 bits.
func MakeNumeric(text []rune) (Segment, error) {
	for _, c := range text {
		if c < '0' || c > '9' {
			return Segment{}, ErrInvalidCharacter
		}
	}
	return Segment{
		mode:     Numeric,
		numChars: uint(len(text)),
		bitLen:   numericBitLen(len(text)),
		write: func(b *bitbuf.Buffer) error {
			var accum uint32
			var count uint8
			for _, c := range text {
				accum = accum*10 + uint32(c) - '0'
				count++
				if count == 3 {
					if err := b.Write(accum, 10); err != nil {
						return err
					}
					accum, count = 0, 0
				}
			}
			if count > 0 {
				return b.Write(accum, int(count)*3+1)
			}
			return nil
		},
	}, nil
}

func numericBitLen(n int) int {
	full := n / 3
	rem := n % 3
	bits := full * 10
	switch rem {
	case 1:
		bits += 4
	case 2:
		bits += 7
	}
	return bits
}

// MakeAlphanumeric returns a segment encoding text (digits, uppercase
// letters, space, and $%*+-./:) in alphanumeric mode: pairs of characters
// become 11 bits, a trailing single character becomes 6 bits.
func MakeAlphanumeric(text []rune) (Segment, error) {
	for _, c := range text {
		if _, ok := alphanumericCharset[c]; !ok {
			return Segment{}, ErrInvalidCharacter
		}
	}
	return Segment{
		mode:     Alphanumeric,
		numChars: uint(len(text)),
		bitLen:   alphanumericBitLen(len(text)),
		write: func(b *bitbuf.Buffer) error {
			var accum uint32
			var count uint32
			for _, c := range text {
				accum = accum*45 + alphanumericCharset[c]
				count++
				if count == 2 {
					if err := b.Write(accum, 11); err != nil {
						return err
					}
					accum, count = 0, 0
				}
			}
			if count > 0 {
				return b.Write(accum, 6)
			}
			return nil
		},
	}, nil
}

func alphanumericBitLen(n int) int {
	bits := (n / 2) * 11
	if n%2 == 1 {
		bits += 6
	}
	return bits
}

// MakeBytes returns a segment encoding the given raw bytes in byte mode.
func MakeBytes(data []byte) Segment {
	buf := append([]byte(nil), data...)
	return Segment{
		mode:     Byte,
		numChars: uint(len(buf)),
		bitLen:   len(buf) * 8,
		write: func(b *bitbuf.Buffer) error {
			for _, v := range buf {
				if err := b.Write(uint32(v), 8); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// MakeKanji always fails: Kanji mode is reserved by ISO/IEC 18004 but not
// implemented here.
func MakeKanji([]rune) (Segment, error) {
	return Segment{}, ErrUnsupportedMode
}

// IsNumeric reports whether every character of text is in '0'-'9'.
func IsNumeric(text []rune) bool {
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether every character of text is in the
// 45-character alphanumeric set.
func IsAlphanumeric(text []rune) bool {
	for _, c := range text {
		if _, ok := alphanumericCharset[c]; !ok {
			return false
		}
	}
	return true
}

// TotalBits returns the number of bits needed to encode segs (mode
// indicators and character count fields included) at the given version,
// or false if a segment's character count doesn't fit its count field.
func TotalBits(segs []Segment, ver version.Version) (int, bool) {
	total := 0
	for _, s := range segs {
		ccbits := s.mode.CountBits(ver)
		if s.numChars >= uint(1)<<ccbits {
			return 0, false
		}
		total += 4 + int(ccbits) + s.bitLen
	}
	return total, true
}
