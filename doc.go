// Package qrcore implements the ISO/IEC 18004 Model 2 QR Code encoding
// pipeline: mode analysis, version selection, bit stream assembly,
// Reed-Solomon error correction, module placement, masking, and format and
// version information. Generate is the high-level entry point; it performs
// no I/O and returns an immutable QrMatrix value. GenerateSegments is the
// lower-level entry point for callers that assemble their own mixed-mode
// segments.
//
// The pipeline is split into leaf packages (bitbuf, gf256, reedsolomon,
// version, ecclevel, mask, segment) feeding this root package, which owns
// placement, masking and format information.
package qrcore
