package qrcore

import (
	"github.com/lumenqr/qrcore/internal/bitx"
	"github.com/lumenqr/qrcore/mask"
)

// paintFormatInfo computes the 15-bit BCH-encoded format word for the
// symbol's ECC level and the given mask, and paints both copies into the
// cells reserveFormatInfo set aside. The BCH(15,5) generator is 0x537 and
// the final XOR mask is 0x5412.
func (s *symbol) paintFormatInfo(m mask.Mask) {
	data := uint32(s.ecl.FormatBits())<<3 | uint32(m.Value())
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	bits := (data<<10 | rem) ^ 0x5412
	if bits>>15 != 0 {
		panic(errInternal{"paintFormatInfo: format word overflowed 15 bits"})
	}

	for i := int32(0); i < 6; i++ {
		s.setFunction(8, i, bitx.GetBit(bits, i))
	}
	s.setFunction(8, 7, bitx.GetBit(bits, 6))
	s.setFunction(8, 8, bitx.GetBit(bits, 7))
	s.setFunction(7, 8, bitx.GetBit(bits, 8))
	for i := int32(9); i < 15; i++ {
		s.setFunction(14-i, 8, bitx.GetBit(bits, i))
	}

	size := s.size
	for i := int32(0); i < 8; i++ {
		s.setFunction(size-1-i, 8, bitx.GetBit(bits, i))
	}
	for i := int32(8); i < 15; i++ {
		s.setFunction(8, size-15+i, bitx.GetBit(bits, i))
	}
	s.setFunction(8, size-8, true)
}

// paintVersionInfo computes the 18-bit BCH-encoded version word (for
// v >= 7) and paints both copies into the regions reserveVersionInfo set
// aside. A no-op below version 7.
func (s *symbol) paintVersionInfo() {
	if s.ver.Value() < 7 {
		return
	}
	data := uint32(s.ver.Value())
	rem := data
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	bits := data<<12 | rem
	if bits>>18 != 0 {
		panic(errInternal{"paintVersionInfo: version word overflowed 18 bits"})
	}

	for i := int32(0); i < 18; i++ {
		bit := bitx.GetBit(bits, i)
		a := s.size - 11 + i%3
		b := i / 3
		s.setFunction(a, b, bit)
		s.setFunction(b, a, bit)
	}
}
