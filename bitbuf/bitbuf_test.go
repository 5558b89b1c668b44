package bitbuf

import "testing"

func TestWriteMSBFirst(t *testing.T) {
	b := New(1)
	if err := b.Write(0b101, 3); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := b.Bytes()[0]; got != 0b10100000 {
		t.Errorf("Bytes()[0] = %08b, want %08b", got, 0b10100000)
	}
	if b.BitPosition() != 3 {
		t.Errorf("BitPosition() = %d, want 3", b.BitPosition())
	}
	if b.ByteCount() != 1 {
		t.Errorf("ByteCount() = %d, want 1", b.ByteCount())
	}
}

func TestWriteAcrossByteBoundary(t *testing.T) {
	b := New(2)
	if err := b.Write(0xFF, 8); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := b.Write(0b11, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := []byte{0xFF, 0b11000000}
	got := b.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bytes()[%d] = %08b, want %08b", i, got[i], want[i])
		}
	}
}

func TestOverflow(t *testing.T) {
	b := New(1)
	if err := b.Write(0xFF, 8); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := b.Write(1, 1); err != ErrOverflow {
		t.Fatalf("Write past capacity error = %v, want ErrOverflow", err)
	}
}

func TestBitCountRange(t *testing.T) {
	b := New(4)
	if err := b.Write(0, 0); err != ErrBitCount {
		t.Fatalf("Write(0 bits) error = %v, want ErrBitCount", err)
	}
	if err := b.Write(0, 33); err != ErrBitCount {
		t.Fatalf("Write(33 bits) error = %v, want ErrBitCount", err)
	}
}

func TestTailBitsZero(t *testing.T) {
	b := New(2)
	if err := b.Write(0b1, 1); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.Bytes()[0]&0x7F != 0 {
		t.Errorf("tail bits not zero: %08b", b.Bytes()[0])
	}
	if b.Bytes()[1] != 0 {
		t.Errorf("unwritten byte not zero: %08b", b.Bytes()[1])
	}
}

func TestRemainingAndCap(t *testing.T) {
	b := New(2)
	if b.Cap() != 16 {
		t.Errorf("Cap() = %d, want 16", b.Cap())
	}
	b.Write(0, 5)
	if b.Remaining() != 11 {
		t.Errorf("Remaining() = %d, want 11", b.Remaining())
	}
}
