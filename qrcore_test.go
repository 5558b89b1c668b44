package qrcore

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lumenqr/qrcore/segment"
)

// "AC-42" at ECC Q is Alphanumeric, fits version 1, and its pre-pad data
// bits are exactly mode|count|payload.
func TestGenerate_AlphanumericPrePadBits(t *testing.T) {
	seg, err := segment.MakeAlphanumeric([]rune("AC-42"))
	if err != nil {
		t.Fatalf("MakeAlphanumeric: %v", err)
	}
	if seg.Mode() != segment.Alphanumeric {
		t.Fatalf("mode = %v, want Alphanumeric", seg.Mode())
	}
	if seg.NumChars() != 5 {
		t.Fatalf("NumChars = %d, want 5", seg.NumChars())
	}
	// 0010 | 000000101 | 0011100111011100111001000010: two 11-bit pairs
	// plus one 6-bit single character.
	wantPayloadBits := 28
	if seg.BitLen() != wantPayloadBits {
		t.Fatalf("BitLen = %d, want %d", seg.BitLen(), wantPayloadBits)
	}

	m, err := Generate("AC-42", Options{EccLevel: Quartile, QuietZone: 4, QuietZoneSet: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Version.Value() != 1 {
		t.Fatalf("version = %d, want 1", m.Version.Value())
	}
	if got := m.Size - 2*m.QuietZone; got != 21 {
		t.Fatalf("core size = %d, want 21", got)
	}
}

// "HELLO WORLD" at ECC Q fits version 1.
func TestGenerate_HelloWorldFitsVersion1(t *testing.T) {
	m, err := Generate("HELLO WORLD", Options{EccLevel: Quartile})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Version.Value() != 1 {
		t.Fatalf("version = %d, want 1", m.Version.Value())
	}
}

// "0123456789" at ECC M is Numeric and fits version 1.
func TestGenerate_NumericFitsVersion1(t *testing.T) {
	m, err := Generate("0123456789", Options{EccLevel: Medium})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Version.Value() != 1 {
		t.Fatalf("version = %d, want 1", m.Version.Value())
	}
}

// Japanese text under EciUtf8 selects Byte mode with an ECI
// header and stays within version 3.
func TestGenerate_JapaneseUtf8(t *testing.T) {
	m, err := Generate("こんにちは", Options{EccLevel: Medium, EciMode: EciUtf8})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Version.Value() > 3 {
		t.Fatalf("version = %d, want <= 3", m.Version.Value())
	}
}

// "Zürich" at ECC H under explicit UTF-8 needs version 2, since
// version 1-H byte capacity (7 bytes) can't hold the ECI header plus the
// 7-byte UTF-8 payload plus mode/count overhead.
func TestGenerate_ZurichNeedsVersion2(t *testing.T) {
	m, err := Generate("Zürich", Options{EccLevel: High, EciMode: EciUtf8})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Version.Value() != 2 {
		t.Fatalf("version = %d, want 2", m.Version.Value())
	}
}

func TestGenerate_EmptyInputProducesMinimalSymbol(t *testing.T) {
	m, err := Generate("", Options{})
	if err != nil {
		t.Fatalf("Generate(\"\"): %v", err)
	}
	if m.Version.Value() != 1 {
		t.Fatalf("version = %d, want 1", m.Version.Value())
	}
}

func TestGenerate_InvalidQuietZone(t *testing.T) {
	_, err := Generate("x", Options{QuietZone: 11, QuietZoneSet: true})
	assertKind(t, err, KindInput)

	_, err = Generate("x", Options{QuietZone: -1, QuietZoneSet: true})
	assertKind(t, err, KindInput)
}

func TestGenerate_InvalidVersion(t *testing.T) {
	_, err := Generate("x", Options{Version: 41, VersionSet: true})
	assertKind(t, err, KindInput)

	_, err = Generate("x", Options{Version: 0, VersionSet: true})
	assertKind(t, err, KindInput)
}

func TestGenerate_InvalidMask(t *testing.T) {
	_, err := Generate("x", Options{Mask: 8, MaskSet: true})
	assertKind(t, err, KindInput)
	if !errors.Is(err, ErrInvalidMask) {
		t.Fatalf("error = %v, want wrapping ErrInvalidMask", err)
	}
	if errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("error = %v, should not wrap ErrInvalidVersion", err)
	}
}

func TestGenerate_VersionCapacityExceeded(t *testing.T) {
	big := make([]rune, 200)
	for i := range big {
		big[i] = '9'
	}
	_, err := Generate(string(big), Options{EccLevel: High, Version: 1, VersionSet: true})
	assertKind(t, err, KindCapacity)
}

func TestGenerate_DataTooLong(t *testing.T) {
	big := make([]byte, 4000)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	_, err := Generate(string(big), Options{EccLevel: High})
	assertKind(t, err, KindCapacity)
}

func TestGenerate_ForcedMaskIsHonored(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		m, err := Generate("forced mask test", Options{EccLevel: Medium, Mask: mask, MaskSet: true})
		if err != nil {
			t.Fatalf("Generate(mask=%d): %v", mask, err)
		}
		if m.Mask != mask {
			t.Errorf("Mask = %d, want %d", m.Mask, mask)
		}
	}
}

func TestGenerate_SizeFormula(t *testing.T) {
	for v := 1; v <= 40; v++ {
		text := ""
		ecl := Low
		m, err := Generate(text, Options{EccLevel: ecl, Version: v, VersionSet: true})
		if err != nil {
			t.Fatalf("Generate(version=%d): %v", v, err)
		}
		want := 21 + 4*(v-1) + 2*4
		if m.Size != want {
			t.Fatalf("version %d: Size = %d, want %d", v, m.Size, want)
		}
	}
}

func TestGenerate_QuietZoneIsAlwaysLight(t *testing.T) {
	m, err := Generate("quiet zone check", Options{QuietZone: 4, QuietZoneSet: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			inBorder := row < m.QuietZone || row >= m.Size-m.QuietZone ||
				col < m.QuietZone || col >= m.Size-m.QuietZone
			if inBorder && m.At(row, col) {
				t.Fatalf("quiet zone cell (%d,%d) is dark", row, col)
			}
		}
	}
}

// Property: the selected version is always the minimum admissible one —
// for random numeric text at level L, forcing the version just below the
// auto-selected one must fail.
func TestGenerate_SelectsMinimumVersion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(150) + 1
		digits := make([]byte, n)
		for i := range digits {
			digits[i] = byte('0' + rng.Intn(10))
		}
		text := string(digits)

		auto, err := Generate(text, Options{EccLevel: Low, BoostEccLevel: false})
		if err != nil {
			t.Fatalf("Generate(%q): %v", text, err)
		}

		// Forcing the version just below the auto-selected one (if any)
		// must fail capacity, confirming auto picked the true minimum.
		if auto.Version.Value() > 1 {
			_, err := Generate(text, Options{
				EccLevel: Low, Version: int(auto.Version.Value()) - 1, VersionSet: true,
			})
			if err == nil {
				t.Fatalf("%q: version %d unexpectedly fit, but Generate auto-selected %d",
					text, auto.Version.Value()-1, auto.Version.Value())
			}
		}
	}
}

// A byte-mode prefix plus a numeric run, hand-assembled as two segments,
// encodes into a version 1 symbol at ECC M.
func TestGenerateSegments_MixedModes(t *testing.T) {
	prefix := segment.MakeBytes([]byte("tel:"))
	digits, err := segment.MakeNumeric([]rune("5551234567"))
	if err != nil {
		t.Fatalf("MakeNumeric: %v", err)
	}

	m, err := GenerateSegments([]segment.Segment{prefix, digits}, Options{EccLevel: Medium})
	if err != nil {
		t.Fatalf("GenerateSegments: %v", err)
	}
	if m.Version.Value() != 1 {
		t.Fatalf("version = %d, want 1", m.Version.Value())
	}
}

// Hand-assembling the ECI header and byte segment must be bit-for-bit
// equivalent to the high-level path that auto-builds the same pair.
func TestGenerateSegments_ExplicitEciHeaderMatchesGenerate(t *testing.T) {
	opts := Options{EccLevel: Medium, EciMode: EciUtf8}
	want, err := Generate("cafe", opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	header, err := segment.MakeEci(26)
	if err != nil {
		t.Fatalf("MakeEci: %v", err)
	}
	data := segment.MakeBytes([]byte("cafe"))
	got, err := GenerateSegments([]segment.Segment{header, data}, Options{EccLevel: Medium})
	if err != nil {
		t.Fatalf("GenerateSegments: %v", err)
	}

	if got.Version != want.Version || got.Size != want.Size {
		t.Fatalf("got version %d size %d, want version %d size %d",
			got.Version.Value(), got.Size, want.Version.Value(), want.Size)
	}
	for r := 0; r < want.Size; r++ {
		for c := 0; c < want.Size; c++ {
			if got.At(r, c) != want.At(r, c) {
				t.Fatalf("module (%d,%d) differs between segment-level and text-level paths", r, c)
			}
		}
	}
}

func TestGenerateSegments_EmptyListProducesMinimalSymbol(t *testing.T) {
	m, err := GenerateSegments(nil, Options{})
	if err != nil {
		t.Fatalf("GenerateSegments(nil): %v", err)
	}
	if m.Version.Value() != 1 {
		t.Fatalf("version = %d, want 1", m.Version.Value())
	}
}

func TestGenerateSegments_DataTooLong(t *testing.T) {
	digits := make([]rune, 8000)
	for i := range digits {
		digits[i] = '7'
	}
	seg, err := segment.MakeNumeric(digits)
	if err != nil {
		t.Fatalf("MakeNumeric: %v", err)
	}
	_, err = GenerateSegments([]segment.Segment{seg}, Options{EccLevel: Low})
	assertKind(t, err, KindCapacity)
}

func TestGenerate_ConcurrentCallsAreIndependent(t *testing.T) {
	texts := []string{"ALPHA", "12345", "hello there", "MIXED 123", "ECI test こんにちは"}
	results := make(chan error, len(texts))
	for _, text := range texts {
		text := text
		go func() {
			_, err := Generate(text, DefaultOptions())
			results <- err
		}()
	}
	for range texts {
		if err := <-results; err != nil {
			t.Errorf("concurrent Generate error: %v", err)
		}
	}
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want Kind %v", want)
	}
	qerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if qerr.Kind != want {
		t.Fatalf("Kind = %v, want %v", qerr.Kind, want)
	}
}
