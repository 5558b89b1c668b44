package qrcore

import (
	"github.com/lumenqr/qrcore/ecclevel"
	"github.com/lumenqr/qrcore/segment"
)

// EciMode selects the Extended Channel Interpretation header policy for
// byte-mode text. It mirrors segment.EciMode so callers of this package
// never need to import the segment package directly.
type EciMode = segment.EciMode

const (
	EciDefault   = segment.EciDefault
	EciIso8859_1 = segment.EciIso8859_1
	EciUtf8      = segment.EciUtf8
)

// EccLevel is the error correction level, re-exported from ecclevel so
// callers only need to import this package.
type EccLevel = ecclevel.EccLevel

const (
	Low      = ecclevel.Low
	Medium   = ecclevel.Medium
	Quartile = ecclevel.Quartile
	High     = ecclevel.High
)

// Options configures a single Generate call. The zero value is valid and
// produces a Low error correction, auto-selected version and mask, default
// ECI policy, no ECC boosting, and a 4-module quiet zone.
type Options struct {
	EccLevel EccLevel
	EciMode  EciMode
	Utf8Bom  bool

	// QuietZone, if QuietZoneSet, is the light module border width,
	// 0..10. When QuietZoneSet is false, QuietZone is ignored and the
	// default of 4 is used.
	QuietZone    int
	QuietZoneSet bool

	// Version, if VersionSet, forces that version (1..40) instead of
	// auto-selecting the smallest version that fits.
	Version    int
	VersionSet bool

	// Mask, if MaskSet, forces that mask pattern (0..7) instead of
	// selecting the one with the lowest penalty score.
	Mask    int
	MaskSet bool

	// BoostEccLevel raises EccLevel to the highest level that still fits
	// the chosen version. DefaultOptions sets it to true; the zero value
	// here is false, so callers using a bare Options{} literal must set
	// it explicitly if they want boosting.
	BoostEccLevel bool
}

// DefaultOptions returns a reasonable starting point for a Generate call:
// Medium ECC, ECI auto-detection, no BOM, a 4-module quiet zone, automatic
// version and mask selection, and ECC boosting enabled.
func DefaultOptions() Options {
	return Options{
		EccLevel:      Medium,
		EciMode:       EciDefault,
		QuietZone:     4,
		QuietZoneSet:  true,
		BoostEccLevel: true,
	}
}

func (o Options) quietZone() int {
	if o.QuietZoneSet {
		return o.QuietZone
	}
	return 4
}
