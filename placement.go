package qrcore

import (
	"github.com/lumenqr/qrcore/internal/bitx"
	"github.com/lumenqr/qrcore/internal/mathx"
)

// drawFunctionPatterns paints and reserves every fixed pattern: timing,
// finders, separators, alignment, the dark module, and the format/version
// regions (format bits get a placeholder so penalty scoring sees the right
// module count; version bits, if any, stay light until paintVersionInfo).
func (s *symbol) drawFunctionPatterns() {
	size := s.size
	for i := int32(0); i < size; i++ {
		s.setFunction(6, i, i%2 == 0)
		s.setFunction(i, 6, i%2 == 0)
	}

	s.drawFinderPattern(3, 3)
	s.drawFinderPattern(size-4, 3)
	s.drawFinderPattern(3, size-4)

	positions := s.ver.AlignmentPatternPositions()
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			s.drawAlignmentPattern(positions[i], positions[j])
		}
	}

	s.reserveFormatInfo()
	s.reserveVersionInfo()
}

// drawFinderPattern paints a 7x7 finder pattern with its 1-module
// separator border, centered at (x, y). Out-of-bounds cells are skipped,
// since the separator extends one module past the finder itself.
func (s *symbol) drawFinderPattern(x, y int32) {
	for dy := int32(-4); dy <= 4; dy++ {
		for dx := int32(-4); dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= s.size || yy < 0 || yy >= s.size {
				continue
			}
			dist := mathx.MaxInt32(mathx.AbsInt32(dx), mathx.AbsInt32(dy))
			s.setFunction(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern paints a 5x5 nested alignment pattern centered at
// (x, y). All cells must already be in bounds.
func (s *symbol) drawAlignmentPattern(x, y int32) {
	for dy := int32(-2); dy <= 2; dy++ {
		for dx := int32(-2); dx <= 2; dx++ {
			s.setFunction(x+dx, y+dy, mathx.MaxInt32(mathx.AbsInt32(dx), mathx.AbsInt32(dy)) != 1)
		}
	}
}

// reserveFormatInfo reserves the 15 format-info cells around the top-left
// finder and split along the top-right/bottom-left edges, and paints the
// single always-dark module. The bits themselves are painted later by
// paintFormatInfo once the mask is chosen.
func (s *symbol) reserveFormatInfo() {
	for i := int32(0); i < 6; i++ {
		s.setFunction(8, i, false)
	}
	s.setFunction(8, 7, false)
	s.setFunction(8, 8, false)
	s.setFunction(7, 8, false)
	for i := int32(9); i < 15; i++ {
		s.setFunction(14-i, 8, false)
	}

	size := s.size
	for i := int32(0); i < 8; i++ {
		s.setFunction(size-1-i, 8, false)
	}
	for i := int32(8); i < 15; i++ {
		s.setFunction(8, size-15+i, false)
	}
	s.setFunction(8, size-8, true) // dark module, per 4v+9,8 formula with v implied by size
}

// reserveVersionInfo reserves the two 3x6 version-info blocks for v >= 7.
func (s *symbol) reserveVersionInfo() {
	if s.ver.Value() < 7 {
		return
	}
	for i := int32(0); i < 18; i++ {
		a := s.size - 11 + i%3
		b := i / 3
		s.setFunction(a, b, false)
		s.setFunction(b, a, false)
	}
}

// drawCodewords paints the interleaved codeword stream (data then ECC) onto
// unreserved cells in the standard zig-zag scan: columns walked
// right-to-left in pairs (skipping the timing column), alternating upward
// and downward passes, right cell before left cell within each row of a
// pass. The remainder cells left over after the stream keep their initial
// light value, the same as zero remainder bits.
func (s *symbol) drawCodewords(data []byte) {
	var i uint
	total := uint(len(data)) * 8

	right := s.size - 1
	for right >= 1 {
		if right == 6 {
			right = 5
		}
		for vert := int32(0); vert < s.size; vert++ {
			for j := int32(0); j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int32
				if upward {
					y = s.size - 1 - vert
				} else {
					y = vert
				}
				if !s.isReserved(x, y) && i < total {
					bit := bitx.GetBit(uint32(data[i>>3]), int32(7-(i&7)))
					s.set(x, y, bit)
					i++
				}
			}
		}
		right -= 2
	}

	if i != total {
		panic(errInternal{"drawCodewords: stream/cell count mismatch"})
	}
}
