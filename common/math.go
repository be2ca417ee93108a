package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// latticeScale is the resolution grid positions are snapped to after each
// step. It keeps repeated decimal steps (7 + 0.1 + 0.1 ...) on the exact
// float64 nearest to the decimal value, so equality tests stay meaningful.
const latticeScale = 1e6

func Quantize(v float64) float64 {
	return math.Round(v*latticeScale) / latticeScale
}

// BoardBounds is the box a walker may occupy: [0, size-1] on both axes,
// with X along i and Y along j.
func BoardBounds(sizeI, sizeJ int) cp.BB {
	return cp.BB{L: 0, B: 0, R: float64(sizeI - 1), T: float64(sizeJ - 1)}
}

// ClampToBoard clamps a fractional grid position into the board.
func ClampToBoard(bb cp.BB, i, j float64) (float64, float64) {
	return cp.Clamp(i, bb.L, bb.R), cp.Clamp(j, bb.B, bb.T)
}
