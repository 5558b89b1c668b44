package segment

import (
	"testing"

	"github.com/lumenqr/qrcore/bitbuf"
	"github.com/lumenqr/qrcore/version"
)

func TestMakeNumericBitLen(t *testing.T) {
	cases := map[string]int{"": 0, "1": 4, "12": 7, "123": 10, "1234": 14, "12345678": 27}
	for text, want := range cases {
		seg, err := MakeNumeric([]rune(text))
		if err != nil {
			t.Fatalf("MakeNumeric(%q): %v", text, err)
		}
		if seg.BitLen() != want {
			t.Errorf("MakeNumeric(%q).BitLen() = %d, want %d", text, seg.BitLen(), want)
		}
	}
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	if _, err := MakeNumeric([]rune("12a")); err != ErrInvalidCharacter {
		t.Fatalf("MakeNumeric(\"12a\") error = %v, want ErrInvalidCharacter", err)
	}
}

func TestMakeNumericWritesAnnexIExample(t *testing.T) {
	// "01234567" groups as 012 | 345 | 67, giving the payload bits
	// 0000001100 0101011001 1000011 (10 + 10 + 7 = 27 bits). This test
	// checks that WriteTo writes exactly BitLen bits, not the bit values.
	seg, err := MakeNumeric([]rune("01234567"))
	if err != nil {
		t.Fatalf("MakeNumeric: %v", err)
	}
	b := bitbuf.New((seg.BitLen() + 7) / 8)
	if err := seg.WriteTo(b); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if b.BitPosition() != seg.BitLen() {
		t.Fatalf("wrote %d bits, want %d", b.BitPosition(), seg.BitLen())
	}
}

func TestMakeAlphanumericBitLen(t *testing.T) {
	seg, err := MakeAlphanumeric([]rune("AC-42"))
	if err != nil {
		t.Fatalf("MakeAlphanumeric: %v", err)
	}
	want := 2*11 + 6
	if seg.BitLen() != want {
		t.Errorf("BitLen() = %d, want %d", seg.BitLen(), want)
	}
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	if _, err := MakeAlphanumeric([]rune("abc")); err != ErrInvalidCharacter {
		t.Fatalf("error = %v, want ErrInvalidCharacter", err)
	}
}

func TestMakeBytesBitLen(t *testing.T) {
	seg := MakeBytes([]byte("hello"))
	if seg.BitLen() != 40 {
		t.Errorf("BitLen() = %d, want 40", seg.BitLen())
	}
	if seg.NumChars() != 5 {
		t.Errorf("NumChars() = %d, want 5", seg.NumChars())
	}
}

func TestMakeKanjiUnsupported(t *testing.T) {
	if _, err := MakeKanji([]rune("a")); err != ErrUnsupportedMode {
		t.Fatalf("MakeKanji error = %v, want ErrUnsupportedMode", err)
	}
}

func TestIsNumericIsAlphanumeric(t *testing.T) {
	if !IsNumeric([]rune("0123")) {
		t.Error("IsNumeric(\"0123\") = false, want true")
	}
	if IsNumeric([]rune("A")) {
		t.Error("IsNumeric(\"A\") = true, want false")
	}
	if !IsAlphanumeric([]rune("HELLO WORLD")) {
		t.Error("IsAlphanumeric(\"HELLO WORLD\") = false, want true")
	}
	if IsAlphanumeric([]rune("hello")) {
		t.Error("IsAlphanumeric(\"hello\") = true, want false")
	}
}

func TestTotalBits(t *testing.T) {
	ver := version.New(1)
	num, err := MakeNumeric([]rune("123"))
	if err != nil {
		t.Fatalf("MakeNumeric: %v", err)
	}
	total, ok := TotalBits([]Segment{num}, ver)
	if !ok {
		t.Fatal("TotalBits reported overflow unexpectedly")
	}
	want := 4 + int(Numeric.CountBits(ver)) + 10
	if total != want {
		t.Errorf("TotalBits = %d, want %d", total, want)
	}
}

func TestTotalBitsOverflow(t *testing.T) {
	ver := version.New(1)
	// Version 1 numeric count field is 10 bits wide, so 1024 or more
	// characters doesn't fit.
	text := make([]rune, 1024)
	for i := range text {
		text[i] = '9'
	}
	seg, err := MakeNumeric(text)
	if err != nil {
		t.Fatalf("MakeNumeric: %v", err)
	}
	if _, ok := TotalBits([]Segment{seg}, ver); ok {
		t.Fatal("TotalBits should report overflow for an oversized numeric segment")
	}
}
