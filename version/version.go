// Package version models the QR Code Model 2 version number (1 to 40) and
// the per-version geometry derived from it: symbol size, alignment pattern
// center positions, raw module capacity, and the trailing remainder bits.
package version

// Version is a number between 1 and 40 (inclusive).
type Version uint8

const (
	// Min is the minimum version number supported in the QR Code Model 2 standard.
	Min = Version(1)
	// Max is the maximum version number supported in the QR Code Model 2 standard.
	Max = Version(40)
)

// New creates a version object from the given number.
//
// Panics if the number is outside the range [1, 40].
func New(ver uint8) Version {
	if ver < uint8(Min) || ver > uint8(Max) {
		panic("version: number out of range")
	}
	return Version(ver)
}

// Value returns the value, which is in the range [1, 40].
func (v Version) Value() uint8 {
	return uint8(v)
}

// Size returns the side length of the symbol in modules: 21 + 4*(v-1).
func (v Version) Size() int32 {
	return int32(v)*4 + 17
}

// alignmentPositions[v] holds the ascending list of alignment pattern center
// coordinates for version v (index 0 unused, version 1 is an empty list).
// Computed once at init from the step/numalign formula rather than
// transcribed from the standard's 40-row table.
var alignmentPositions [41][]int32

// numRawDataModules[v] is the module capacity of version v's data region,
// including remainder bits.
var numRawDataModules [41]uint

func init() {
	for ver := uint8(1); ver <= 40; ver++ {
		alignmentPositions[ver] = computeAlignmentPositions(ver)
		numRawDataModules[ver] = computeNumRawDataModules(ver)
	}
}

func computeAlignmentPositions(ver uint8) []int32 {
	if ver == 1 {
		return []int32{}
	}
	size := int32(ver)*4 + 17
	numalign := int32(ver)/7 + 2
	var step int32
	if ver == 32 {
		step = 26
	} else {
		step = (int32(ver)*4 + numalign*2 + 1) / (numalign*2 - 2) * 2
	}
	result := make([]int32, numalign)
	for i := int32(0); i < numalign-1; i++ {
		result[i] = size - 7 - i*step
	}
	result[numalign-1] = 6

	ascending := make([]int32, numalign)
	for i, val := range result {
		ascending[numalign-1-int32(i)] = val
	}
	return ascending
}

func computeNumRawDataModules(ver uint8) uint {
	v := uint(ver)
	result := (16*v+128)*v + 64
	if v >= 2 {
		numalign := v/7 + 2
		result -= (25*numalign-10)*numalign - 55
		if v >= 7 {
			result -= 36
		}
	}
	return result
}

// AlignmentPatternPositions returns the ascending list of alignment pattern
// center coordinates shared by both axes. The returned slice is in the
// range [0, size) and excludes no finder overlaps; callers must skip the
// three combinations that collide with a finder pattern.
func (v Version) AlignmentPatternPositions() []int32 {
	return alignmentPositions[v.Value()]
}

// NumRawDataModules returns the number of data bits (including remainder
// bits) that fit in this version's symbol once all function modules are
// excluded. The result is in the range [208, 29648].
func (v Version) NumRawDataModules() uint {
	return numRawDataModules[v.Value()]
}

// RemainderBits returns the 0..7 padding bits appended after the
// interleaved codeword stream, equal to the raw module count modulo 8
// since the data and ECC codewords always consume the largest possible
// multiple of 8 raw modules.
func (v Version) RemainderBits() uint {
	return numRawDataModules[v.Value()] % 8
}
