package gf256

import "testing"

func TestExpLogRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		got := Exp(int(logTable[a]))
		if got != byte(a) {
			t.Errorf("exp[log[%d]] = %d, want %d", a, got, a)
		}
	}
}

func TestMulByZeroAndOne(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := Mul(byte(a), 0); got != 0 {
			t.Errorf("Mul(%d, 0) = %d, want 0", a, got)
		}
		if got := Mul(0, byte(a)); got != 0 {
			t.Errorf("Mul(0, %d) = %d, want 0", a, got)
		}
		if got := Mul(byte(a), 1); got != byte(a) {
			t.Errorf("Mul(%d, 1) = %d, want %d", a, got, a)
		}
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := Div(5, 0); err != ErrDivByZero {
		t.Fatalf("Div(5, 0) error = %v, want ErrDivByZero", err)
	}
}

func TestDivUndoesMul(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			prod := Mul(byte(a), byte(b))
			got, err := Div(prod, byte(b))
			if err != nil {
				t.Fatalf("Div returned error: %v", err)
			}
			if got != byte(a) {
				t.Errorf("Div(Mul(%d,%d), %d) = %d, want %d", a, b, b, got, a)
			}
		}
	}
}
