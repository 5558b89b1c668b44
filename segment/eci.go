package segment

import (
	"errors"

	"github.com/lumenqr/qrcore/bitbuf"
)

// EciMode selects the Extended Channel Interpretation header, if any,
// prepended to a byte-mode segment.
type EciMode uint8

const (
	// EciDefault emits no ECI header. Byte-mode text must be losslessly
	// representable in ISO-8859-1, or AnalyzeText upgrades to EciUtf8.
	EciDefault EciMode = iota
	EciIso8859_1
	EciUtf8
)

// ErrUnsupportedEci is returned for an EciMode this library doesn't know.
var ErrUnsupportedEci = errors.New("segment: unsupported ECI mode")

// AssignmentValue returns the ECI designator's assignment number.
func (e EciMode) AssignmentValue() (uint8, error) {
	switch e {
	case EciIso8859_1:
		return 3, nil
	case EciUtf8:
		return 26, nil
	default:
		return 0, ErrUnsupportedEci
	}
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// MakeEci returns a header segment carrying an Extended Channel
// Interpretation designator with the given assignment value. Only
// single-byte assignment values (0..127) are accepted, which covers
// ISO-8859-1 (3) and UTF-8 (26).
func MakeEci(assignment uint32) (Segment, error) {
	if assignment > 127 {
		return Segment{}, ErrUnsupportedEci
	}
	return Segment{
		mode:   Eci,
		bitLen: 8,
		write: func(b *bitbuf.Buffer) error {
			return b.Write(assignment, 8)
		},
	}, nil
}

// AnalyzeText implements the mode and ECI selection rules: numeric or
// alphanumeric text needs no ECI header; byte-mode text uses no header if
// it fits ISO-8859-1 (code points 0-255) and none was explicitly requested,
// otherwise it is re-encoded as UTF-8 under an ECI(26) header. An explicit
// request for EciIso8859_1 or EciUtf8 is honored verbatim for byte-mode
// text; wantBOM prepends a UTF-8 byte order mark when the chosen encoding
// is UTF-8.
func AnalyzeText(text []rune, requested EciMode, wantBOM bool) (mode Mode, eci EciMode, payload []byte, err error) {
	switch {
	case IsNumeric(text):
		return Numeric, EciDefault, nil, nil
	case IsAlphanumeric(text):
		return Alphanumeric, EciDefault, nil, nil
	}

	switch requested {
	case EciIso8859_1:
		payload, err := toLatin1(text)
		if err != nil {
			return Byte, EciIso8859_1, nil, err
		}
		return Byte, EciIso8859_1, payload, nil
	case EciUtf8:
		return Byte, EciUtf8, utf8Payload(text, wantBOM), nil
	default:
		if payload, ok := tryLatin1(text); ok {
			return Byte, EciDefault, payload, nil
		}
		return Byte, EciUtf8, utf8Payload(text, wantBOM), nil
	}
}

// ErrNotLatin1 is returned when text requires a code point above 0xFF but
// ISO-8859-1 was explicitly requested.
var ErrNotLatin1 = errors.New("segment: text is not representable in ISO-8859-1")

func toLatin1(text []rune) ([]byte, error) {
	payload, ok := tryLatin1(text)
	if !ok {
		return nil, ErrNotLatin1
	}
	return payload, nil
}

func tryLatin1(text []rune) ([]byte, bool) {
	out := make([]byte, len(text))
	for i, c := range text {
		if c > 0xFF {
			return nil, false
		}
		out[i] = byte(c)
	}
	return out, true
}

func utf8Payload(text []rune, wantBOM bool) []byte {
	encoded := []byte(string(text))
	if !wantBOM {
		return encoded
	}
	out := make([]byte, 0, len(bom)+len(encoded))
	out = append(out, bom...)
	out = append(out, encoded...)
	return out
}
