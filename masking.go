package qrcore

import (
	"math"

	"github.com/lumenqr/qrcore/internal/mathx"
	"github.com/lumenqr/qrcore/mask"
)

// Penalty weights per ISO/IEC 18004 6.8.3.1.
const (
	penaltyN1 int32 = 3
	penaltyN2 int32 = 3
	penaltyN3 int32 = 40
	penaltyN4 int32 = 10
)

// applyMask XORs every non-reserved module with m's predicate. Calling it
// twice with the same mask undoes it, since XOR is its own inverse; the
// masking pass below relies on that to probe all eight candidates cheaply.
func (s *symbol) applyMask(m mask.Mask) {
	for y := int32(0); y < s.size; y++ {
		for x := int32(0); x < s.size; x++ {
			if s.isReserved(x, y) {
				continue
			}
			if m.Invert(x, y) {
				s.set(x, y, !s.get(x, y))
			}
		}
	}
}

// chooseMask returns the forced mask if one is given (its range is checked
// earlier, by validateOptions); otherwise it tries all eight masks and
// returns the one with the lowest penalty, ties going to the lowest id.
// Each probe is undone, so the data/ECC grid is left unmasked; the caller
// applies the chosen mask and paints its format bits.
func (s *symbol) chooseMask(forced *mask.Mask) mask.Mask {
	if forced != nil {
		return *forced
	}

	best := mask.New(0)
	bestPenalty := int32(math.MaxInt32)
	for _, m := range mask.AllMasks() {
		s.applyMask(m)
		s.paintFormatInfo(m)
		penalty := s.penaltyScore()
		if penalty < bestPenalty {
			best = m
			bestPenalty = penalty
		}
		s.applyMask(m) // undo the probe
	}
	return best
}

// penaltyScore computes the total N1-N4 penalty for the symbol's current
// module state.
func (s *symbol) penaltyScore() int32 {
	var total int32
	size := s.size

	for y := int32(0); y < size; y++ {
		var runColor bool
		var runLen int32
		fp := newFinderPenalty(size)
		for x := int32(0); x < size; x++ {
			if s.get(x, y) == runColor {
				runLen++
				if runLen == 5 {
					total += penaltyN1
				} else if runLen > 5 {
					total++
				}
			} else {
				fp.addHistory(runLen)
				if !runColor {
					total += fp.countPatterns() * penaltyN3
				}
				runColor = s.get(x, y)
				runLen = 1
			}
		}
		total += fp.terminateAndCount(runColor, runLen) * penaltyN3
	}

	for x := int32(0); x < size; x++ {
		var runColor bool
		var runLen int32
		fp := newFinderPenalty(size)
		for y := int32(0); y < size; y++ {
			if s.get(x, y) == runColor {
				runLen++
				if runLen == 5 {
					total += penaltyN1
				} else if runLen > 5 {
					total++
				}
			} else {
				fp.addHistory(runLen)
				if !runColor {
					total += fp.countPatterns() * penaltyN3
				}
				runColor = s.get(x, y)
				runLen = 1
			}
		}
		total += fp.terminateAndCount(runColor, runLen) * penaltyN3
	}

	for y := int32(0); y < size-1; y++ {
		for x := int32(0); x < size-1; x++ {
			c := s.get(x, y)
			if c == s.get(x+1, y) && c == s.get(x, y+1) && c == s.get(x+1, y+1) {
				total += penaltyN2
			}
		}
	}

	var dark int32
	for _, m := range s.modules {
		dark += mathx.BoolToInt32(m)
	}
	allModules := size * size
	k := (mathx.AbsInt32(dark*20-allModules*10)+allModules-1)/allModules - 1
	total += k * penaltyN4

	return total
}

// finderPenalty tracks the last seven run lengths of a row or column scan to
// detect the finder-like 1011101 pattern used by the N3 penalty.
type finderPenalty struct {
	size    int32
	history [7]int32
}

func newFinderPenalty(size int32) *finderPenalty {
	return &finderPenalty{size: size}
}

func (p *finderPenalty) addHistory(runLen int32) {
	if p.history[0] == 0 {
		runLen += p.size // count the light border as part of the run
	}
	copy(p.history[1:], p.history[:len(p.history)-1])
	p.history[0] = runLen
}

// countPatterns must only be called right after a light run is recorded,
// and returns how many of the two finder-like patterns (1:1:3:1:1 with a
// light pad of at least 4 units after it, or before it) match the last
// seven runs.
func (p *finderPenalty) countPatterns() int32 {
	h := p.history
	n := h[1]
	core := n > 0 && h[2] == n && h[3] == n*3 && h[4] == n && h[5] == n
	var count int32
	if core && h[0] >= n*4 && h[6] >= n {
		count++
	}
	if core && h[6] >= n*4 && h[0] >= n {
		count++
	}
	return count
}

func (p *finderPenalty) terminateAndCount(runColor bool, runLen int32) int32 {
	if runColor {
		p.addHistory(runLen)
		runLen = 0
	}
	runLen += p.size
	p.addHistory(runLen)
	return p.countPatterns()
}
