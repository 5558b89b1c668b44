// Package mask implements the eight QR Code data-masking patterns as pure
// predicates over module coordinates.
package mask

// Mask is a number between 0 and 7 (inclusive).
type Mask uint8

// New creates a mask object from the given number.
func New(mask uint8) Mask {
	// Panics if the number is outside the range [0, 7].
	if mask > 7 {
		panic("Mask value out of range")
	}

	return Mask(mask)
}

// Value returns the value, which is in the range [0, 7].
func (m Mask) Value() uint8 {
	return uint8(m)
}

// Invert reports whether the module at (x, y) should be flipped under this
// mask pattern, per ISO/IEC 18004 Table 10. Callers must apply this only to
// non-function modules.
func (m Mask) Invert(x, y int32) bool {
	switch m.Value() {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("mask: unreachable")
	}
}

// AllMasks returns the eight mask patterns in ascending order, for
// exhaustive best-mask search.
func AllMasks() []Mask {
	all := make([]Mask, 8)
	for i := range all {
		all[i] = Mask(i)
	}
	return all
}
