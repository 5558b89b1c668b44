package qrcore

import (
	"github.com/lumenqr/qrcore/bitbuf"
	"github.com/lumenqr/qrcore/ecclevel"
	"github.com/lumenqr/qrcore/internal/mathx"
	"github.com/lumenqr/qrcore/segment"
	"github.com/lumenqr/qrcore/version"
)

// assembled holds everything the codeword/interleave/placement stages need
// once mode analysis, version selection and ECC boosting have settled.
type assembled struct {
	ver  version.Version
	ecl  EccLevel
	data []byte
}

// assemble runs the mode analyzer, version selector, ECC booster and data
// assembler in sequence.
func assemble(text []rune, opts Options) (assembled, *Error) {
	if opts.EciMode > EciUtf8 {
		return assembled{}, wrapErr(KindInput, ErrUnsupportedEci)
	}

	mode, eci, payload, err := segment.AnalyzeText(text, opts.EciMode, opts.Utf8Bom)
	if err != nil {
		return assembled{}, wrapErr(KindInput, err)
	}

	seg, err := buildSegment(mode, text, payload)
	if err != nil {
		return assembled{}, wrapErr(KindInput, err)
	}

	segs := make([]segment.Segment, 0, 2)
	if eci != segment.EciDefault {
		assignment, err := eci.AssignmentValue()
		if err != nil {
			return assembled{}, wrapErr(KindInput, err)
		}
		header, err := segment.MakeEci(uint32(assignment))
		if err != nil {
			return assembled{}, wrapErr(KindInput, err)
		}
		segs = append(segs, header)
	}
	segs = append(segs, seg)

	return assembleSegments(segs, opts)
}

// assembleSegments runs version selection, ECC boosting and bit stream
// assembly over an already-built segment list.
func assembleSegments(segs []segment.Segment, opts Options) (assembled, *Error) {
	for _, seg := range segs {
		if seg.Mode() == segment.Kanji {
			return assembled{}, wrapErr(KindInput, ErrUnsupportedMode)
		}
	}

	ver, ecl, usedBits, cerr := selectVersion(segs, opts)
	if cerr != nil {
		return assembled{}, cerr
	}

	if opts.BoostEccLevel {
		ecl = boostEccLevel(ver, ecl, usedBits)
	}

	data, ierr := assembleBitStream(ver, ecl, segs, usedBits)
	if ierr != nil {
		return assembled{}, ierr
	}

	return assembled{ver: ver, ecl: ecl, data: data}, nil
}

func buildSegment(mode segment.Mode, text []rune, payload []byte) (segment.Segment, error) {
	switch mode {
	case segment.Numeric:
		return segment.MakeNumeric(text)
	case segment.Alphanumeric:
		return segment.MakeAlphanumeric(text)
	case segment.Byte:
		return segment.MakeBytes(payload), nil
	default:
		return segment.Segment{}, ErrUnsupportedMode
	}
}

// selectVersion finds the smallest version whose data capacity (at the
// requested ECC level) can hold every segment, or validates the caller's
// explicit version choice.
func selectVersion(segs []segment.Segment, opts Options) (version.Version, EccLevel, int, *Error) {
	if opts.VersionSet {
		if opts.Version < 1 || opts.Version > 40 {
			return 0, 0, 0, wrapErr(KindInput, ErrInvalidVersion)
		}
		ver := version.New(uint8(opts.Version))
		used, ok := segment.TotalBits(segs, ver)
		if !ok {
			return 0, 0, 0, wrapErr(KindCapacity, ErrVersionCapacityExceeded)
		}
		capacityBits := int(ecclevel.EccInfo(ver, opts.EccLevel).TotalDataCodewords) * 8
		if used > capacityBits {
			return 0, 0, 0, wrapErr(KindCapacity, ErrVersionCapacityExceeded)
		}
		return ver, opts.EccLevel, used, nil
	}

	for v := uint8(version.Min); v <= uint8(version.Max); v++ {
		ver := version.New(v)
		used, ok := segment.TotalBits(segs, ver)
		if !ok {
			continue
		}
		capacityBits := int(ecclevel.EccInfo(ver, opts.EccLevel).TotalDataCodewords) * 8
		if used <= capacityBits {
			return ver, opts.EccLevel, used, nil
		}
	}
	return 0, 0, 0, wrapErr(KindCapacity, ErrDataTooLong)
}

// boostEccLevel raises ecl to the highest level that still fits usedBits
// in ver's capacity, spending spare room on error resilience instead of
// leaving it unused.
func boostEccLevel(ver version.Version, ecl EccLevel, usedBits int) EccLevel {
	for _, candidate := range []EccLevel{Medium, Quartile, High} {
		if usedBits <= int(ecclevel.EccInfo(ver, candidate).TotalDataCodewords)*8 {
			ecl = candidate
		}
	}
	return ecl
}

// assembleBitStream writes each segment's mode indicator, character count
// and payload in order, then the terminator, byte alignment and pad bytes,
// into a buffer sized exactly to the version/ECC level's data capacity.
func assembleBitStream(ver version.Version, ecl EccLevel, segs []segment.Segment, usedBits int) ([]byte, *Error) {
	capacityBytes := int(ecclevel.EccInfo(ver, ecl).TotalDataCodewords)
	buf := bitbuf.New(capacityBytes)

	for _, seg := range segs {
		if err := buf.Write(seg.Mode().Indicator(), 4); err != nil {
			return nil, wrapErr(KindInternal, err)
		}
		if ccbits := seg.Mode().CountBits(ver); ccbits > 0 {
			if err := buf.Write(uint32(seg.NumChars()), int(ccbits)); err != nil {
				return nil, wrapErr(KindInternal, err)
			}
		}
		if err := seg.WriteTo(buf); err != nil {
			return nil, wrapErr(KindInternal, err)
		}
	}
	if buf.BitPosition() != usedBits {
		return nil, wrapErr(KindInternal, errInternal{"assembleBitStream: bit position does not match computed used bits"})
	}

	terminatorBits := mathx.MinUint(4, uint(buf.Remaining()))
	if terminatorBits > 0 {
		if err := buf.Write(0, int(terminatorBits)); err != nil {
			return nil, wrapErr(KindInternal, err)
		}
	}

	if padBits := uint(mathx.NegateNonNegative(buf.BitPosition()) & 7); padBits != 0 {
		if err := buf.Write(0, int(padBits)); err != nil {
			return nil, wrapErr(KindInternal, err)
		}
	}

	padBytes := [2]uint32{0xEC, 0x11}
	for i := 0; buf.ByteCount() < capacityBytes; i++ {
		if err := buf.Write(padBytes[i%2], 8); err != nil {
			return nil, wrapErr(KindInternal, err)
		}
	}

	return buf.Bytes(), nil
}
