// Package ecclevel models the four QR Code error correction levels and the
// per-version block layout (ECC codewords per block, block counts) that
// together with the version determine a symbol's total data capacity.
package ecclevel

import "github.com/lumenqr/qrcore/version"

// EccLevel is the error correction level in a QR Code symbol.
type EccLevel uint

const (
	// Low means the QR Code can tolerate about  7% erroneous codewords.
	Low EccLevel = 0
	// Medium means the QR Code can tolerate about 15% erroneous codewords.
	Medium EccLevel = 1
	// Quartile means the QR Code can tolerate about 25% erroneous codewords.
	Quartile EccLevel = 2
	// High means the QR Code can tolerate about 30% erroneous codewords.
	High EccLevel = 3
)

// Ordinal returns an unsigned 2-bit integer (in the range 0 to 3).
func (e EccLevel) Ordinal() uint {
	switch e {
	case Low:
		return 0
	case Medium:
		return 1
	case Quartile:
		return 2
	case High:
		return 3
	default:
		panic("ecclevel: unknown EccLevel")
	}
}

// FormatBits returns the 2-bit code used in the 15-bit format information
// word. Note this is not the same sequence as Ordinal: the standard orders
// format bits Medium, Low, High, Quartile.
func (e EccLevel) FormatBits() uint8 {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("ecclevel: unknown EccLevel")
	}
}

// String renders the level the way ISO/IEC 18004 names it in running text
// ("L", "M", "Q", "H"), not the Go identifier.
func (e EccLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// eccCodewordsPerBlock[level][version] gives the number of ECC codewords in
// each block; index 0 of the version axis is unused.
var eccCodewordsPerBlock = [4][41]int8{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numErrorCorrectionBlocks[level][version] gives the number of blocks the
// data and ECC codewords are split into.
var numErrorCorrectionBlocks = [4][41]int8{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// Info describes how a version+level's data and ECC codewords are laid out
// into blocks, derived analytically from eccCodewordsPerBlock,
// numErrorCorrectionBlocks and the version's raw module count rather than
// transcribed as a third standalone table.
type Info struct {
	TotalDataCodewords uint
	EccPerBlock        uint
	BlocksG1           uint // number of short blocks (group 1)
	CodewordsG1        uint // data codewords per short block
	BlocksG2           uint // number of long blocks (group 2), may be 0
	CodewordsG2        uint // data codewords per long block
}

// EccInfo computes the block layout for the given version and level.
func EccInfo(ver version.Version, ecl EccLevel) Info {
	blockEcc := uint(eccCodewordsPerBlock[ecl.Ordinal()][ver.Value()])
	numBlocks := uint(numErrorCorrectionBlocks[ecl.Ordinal()][ver.Value()])
	rawCodewords := ver.NumRawDataModules() / 8

	numShortBlocks := numBlocks - (rawCodewords % numBlocks)
	shortBlockLen := rawCodewords / numBlocks

	shortData := shortBlockLen - blockEcc
	longData := shortData + 1
	blocksG2 := numBlocks - numShortBlocks

	info := Info{
		EccPerBlock: blockEcc,
		BlocksG1:    numShortBlocks,
		CodewordsG1: shortData,
		BlocksG2:    blocksG2,
	}
	if blocksG2 > 0 {
		info.CodewordsG2 = longData
	}
	info.TotalDataCodewords = numShortBlocks*shortData + blocksG2*longData
	return info
}
