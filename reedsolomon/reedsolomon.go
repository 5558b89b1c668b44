// Package reedsolomon builds the generator polynomial and computes the
// error correction codewords for QR Code's Reed-Solomon coding over
// gf256.
package reedsolomon

import "github.com/lumenqr/qrcore/gf256"

// GeneratorPolynomial returns the coefficients of the degree-n generator
// polynomial G(x) = product_{i=0..n-1} (x - alpha^i), from highest to
// lowest power, so result[0] is always 1 and the result has n+1 entries.
func GeneratorPolynomial(n int) []byte {
	gen := []byte{1}
	for i := 0; i < n; i++ {
		gen = polyMul(gen, []byte{1, gf256.Exp(i)})
	}
	return gen
}

// polyMul convolves two coefficient lists (highest degree first) over gf256.
func polyMul(p, q []byte) []byte {
	res := make([]byte, len(p)+len(q)-1)
	for i, pv := range p {
		if pv == 0 {
			continue
		}
		for j, qv := range q {
			res[i+j] ^= gf256.Mul(pv, qv)
		}
	}
	return res
}

// ComputeRemainder computes the n error correction codewords for data,
// where n = len(generator)-1, by simulating polynomial long division of
// data (treated as the high-order coefficients of a message polynomial)
// by generator, keeping only the remainder.
func ComputeRemainder(data []byte, generator []byte) []byte {
	n := len(generator) - 1
	msg := make([]byte, len(data)+n)
	copy(msg, data)

	for i := 0; i < len(data); i++ {
		c := msg[i]
		if c != 0 {
			for j := 0; j < n; j++ {
				msg[i+1+j] ^= gf256.Mul(generator[j+1], c)
			}
		}
	}
	return msg[len(data):]
}
