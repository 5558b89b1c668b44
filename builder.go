package qrcore

import (
	"github.com/lumenqr/qrcore/mask"
	"github.com/lumenqr/qrcore/version"
)

// symbol is the mutable working grid used while constructing a QR Code,
// kept separate from the public, immutable QrMatrix it eventually
// produces.
type symbol struct {
	ver      version.Version
	size     int32
	ecl      EccLevel
	mask     mask.Mask
	modules  []bool
	reserved []bool
}

func newSymbol(ver version.Version, ecl EccLevel) *symbol {
	size := ver.Size()
	return &symbol{
		ver:      ver,
		size:     size,
		ecl:      ecl,
		modules:  make([]bool, size*size),
		reserved: make([]bool, size*size),
	}
}

func (s *symbol) get(x, y int32) bool {
	return s.modules[y*s.size+x]
}

func (s *symbol) set(x, y int32, dark bool) {
	s.modules[y*s.size+x] = dark
}

// setFunction paints a module and reserves it so the masker and data
// placer leave it untouched.
func (s *symbol) setFunction(x, y int32, dark bool) {
	s.set(x, y, dark)
	s.reserved[y*s.size+x] = true
}

func (s *symbol) isReserved(x, y int32) bool {
	return s.reserved[y*s.size+x]
}

// toMatrix packs the working grid into the public matrix shape, adding the
// requested quiet zone border.
func (s *symbol) toMatrix(quietZone int) *QrMatrix {
	full := int(s.size) + 2*quietZone
	modules := make([][]bool, full)
	for r := range modules {
		modules[r] = make([]bool, full)
	}
	for y := int32(0); y < s.size; y++ {
		for x := int32(0); x < s.size; x++ {
			if s.get(x, y) {
				modules[int(y)+quietZone][int(x)+quietZone] = true
			}
		}
	}
	return &QrMatrix{
		Version:   s.ver,
		EccLevel:  s.ecl,
		Mask:      int(s.mask.Value()),
		Size:      full,
		QuietZone: quietZone,
		Modules:   modules,
	}
}
