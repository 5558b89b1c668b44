package qrcore

import (
	"github.com/lumenqr/qrcore/mask"
	"github.com/lumenqr/qrcore/segment"
)

// Generate builds a complete QR Code module matrix for text at the given
// options. It performs no I/O, spawns no goroutines, and is safe to call
// concurrently from multiple goroutines (the only shared state is the
// process-wide, immutable tables in the leaf packages).
func Generate(text string, opts Options) (m *QrMatrix, err error) {
	defer recoverInternal(&m, &err)

	if verr := validateOptions(opts); verr != nil {
		return nil, verr
	}

	a, aerr := assemble([]rune(text), opts)
	if aerr != nil {
		return nil, aerr
	}
	return buildSymbol(a, opts), nil
}

// GenerateSegments builds a QR Code from caller-assembled segments,
// bypassing mode analysis and ECI auto-detection: segments are written to
// the bit stream in order, so callers can mix modes (say, a byte-mode
// prefix followed by a long numeric run) or prepend their own ECI header
// built with segment.MakeEci. The EciMode and Utf8Bom options are ignored
// here; everything else behaves as in Generate.
func GenerateSegments(segs []segment.Segment, opts Options) (m *QrMatrix, err error) {
	defer recoverInternal(&m, &err)

	if verr := validateOptions(opts); verr != nil {
		return nil, verr
	}

	a, aerr := assembleSegments(segs, opts)
	if aerr != nil {
		return nil, aerr
	}
	return buildSymbol(a, opts), nil
}

func validateOptions(opts Options) *Error {
	quietZone := opts.quietZone()
	if quietZone < 0 || quietZone > 10 {
		return wrapErr(KindInput, ErrInvalidQuietZone)
	}
	if opts.MaskSet && (opts.Mask < 0 || opts.Mask > 7) {
		return wrapErr(KindInput, ErrInvalidMask)
	}
	return nil
}

// buildSymbol runs the placement, masking and format information stages
// over an assembled codeword stream and packs the result.
func buildSymbol(a assembled, opts Options) *QrMatrix {
	s := newSymbol(a.ver, a.ecl)
	s.drawFunctionPatterns()

	codewords := buildInterleavedCodewords(a.ver, a.ecl, a.data)
	s.drawCodewords(codewords)

	var forced *mask.Mask
	if opts.MaskSet {
		fm := mask.New(uint8(opts.Mask))
		forced = &fm
	}
	chosen := s.chooseMask(forced)
	s.mask = chosen
	s.applyMask(chosen)
	s.paintFormatInfo(chosen)
	s.paintVersionInfo()

	return s.toMatrix(opts.quietZone())
}

// recoverInternal converts an errInternal panic raised at a violated
// invariant deep inside the pipeline into a KindInternal error; any other
// panic value is re-raised.
func recoverInternal(m **QrMatrix, err *error) {
	if r := recover(); r != nil {
		if ie, ok := r.(errInternal); ok {
			*m, *err = nil, wrapErr(KindInternal, ie)
			return
		}
		panic(r)
	}
}
