package qrcore

import "github.com/lumenqr/qrcore/version"

// QrMatrix is the finished, immutable two-color module grid returned by
// Generate. Modules and Size both include the quiet zone border.
type QrMatrix struct {
	Version  version.Version
	EccLevel EccLevel
	Mask     int
	// Size is the full side length in modules, including the quiet
	// zone: size(version) + 2*quietZone.
	Size int
	// QuietZone is the light border width applied on every side.
	QuietZone int
	// Modules holds one row per module, indexed [row][col]; true is
	// dark. Quiet zone cells are always false (light).
	Modules [][]bool
}

// At reports whether the module at (row, col) is dark. Out-of-bounds
// coordinates return false, matching the quiet zone's fixed light color.
func (m *QrMatrix) At(row, col int) bool {
	if row < 0 || row >= m.Size || col < 0 || col >= m.Size {
		return false
	}
	return m.Modules[row][col]
}
