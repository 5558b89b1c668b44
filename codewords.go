package qrcore

import (
	"github.com/lumenqr/qrcore/ecclevel"
	"github.com/lumenqr/qrcore/reedsolomon"
	"github.com/lumenqr/qrcore/version"
)

// buildInterleavedCodewords splits data into its blocks, appends each
// block's Reed-Solomon ECC codewords, and interleaves data then ECC across
// all blocks.
func buildInterleavedCodewords(ver version.Version, ecl EccLevel, data []byte) []byte {
	info := ecclevel.EccInfo(ver, ecl)
	if uint(len(data)) != info.TotalDataCodewords {
		panic(errInternal{"buildInterleavedCodewords: data length does not match EccInfo.TotalDataCodewords"})
	}

	type block struct {
		data []byte
		ecc  []byte
	}

	totalBlocks := info.BlocksG1 + info.BlocksG2
	blocks := make([]block, 0, totalBlocks)
	gen := reedsolomon.GeneratorPolynomial(int(info.EccPerBlock))

	offset := uint(0)
	for i := uint(0); i < info.BlocksG1; i++ {
		d := data[offset : offset+info.CodewordsG1]
		offset += info.CodewordsG1
		blocks = append(blocks, block{data: d, ecc: reedsolomon.ComputeRemainder(d, gen)})
	}
	for i := uint(0); i < info.BlocksG2; i++ {
		d := data[offset : offset+info.CodewordsG2]
		offset += info.CodewordsG2
		blocks = append(blocks, block{data: d, ecc: reedsolomon.ComputeRemainder(d, gen)})
	}

	maxDataLen := info.CodewordsG1
	if info.CodewordsG2 > maxDataLen {
		maxDataLen = info.CodewordsG2
	}

	result := make([]byte, 0, ver.NumRawDataModules()/8)
	for i := uint(0); i < maxDataLen; i++ {
		for _, b := range blocks {
			if i < uint(len(b.data)) {
				result = append(result, b.data[i])
			}
		}
	}
	for i := uint(0); i < info.EccPerBlock; i++ {
		for _, b := range blocks {
			result = append(result, b.ecc[i])
		}
	}
	return result
}
