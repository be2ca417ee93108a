package component

import "math"

// Cell is one board tile. Height only offsets entities standing on it.
type Cell struct {
	Height float64
}

// Board is the fixed-size tile grid, indexed Cells[j][i].
type Board struct {
	SizeI int
	SizeJ int
	Cells [][]Cell
}

// NewBoard generates a board with heights drawn by height(i, j).
func NewBoard(sizeI, sizeJ int, height func(i, j int) float64) *Board {
	b := &Board{SizeI: sizeI, SizeJ: sizeJ, Cells: make([][]Cell, sizeJ)}
	for j := range b.Cells {
		row := make([]Cell, sizeI)
		for i := range row {
			if height != nil {
				row[i].Height = height(i, j)
			}
		}
		b.Cells[j] = row
	}
	return b
}

// CellIndex rounds a fractional position to the nearest cell, clamped into
// the grid.
func (b *Board) CellIndex(i, j float64) (int, int) {
	ci := clampIndex(int(math.Round(i)), b.SizeI)
	cj := clampIndex(int(math.Round(j)), b.SizeJ)
	return ci, cj
}

// HeightAt returns the height of the cell under the rounded position.
func (b *Board) HeightAt(i, j float64) float64 {
	if b == nil || len(b.Cells) == 0 {
		return 0
	}
	ci, cj := b.CellIndex(i, j)
	if cj >= len(b.Cells) || ci >= len(b.Cells[cj]) {
		return 0
	}
	return b.Cells[cj][ci].Height
}

func clampIndex(v, size int) int {
	if v < 0 {
		return 0
	}
	if v > size-1 {
		return size - 1
	}
	return v
}

var BoardComponent = NewComponent[Board]()
