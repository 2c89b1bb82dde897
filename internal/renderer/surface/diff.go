package surface

import "github.com/dshills/tessera/internal/renderer/core"

// Change is a single cell that differs between two buffers.
type Change struct {
	X, Y int
	Cell core.Cell
}

// Diff returns the cells of b that differ from prev. When the areas differ
// every cell of b is reported.
func (b *Buffer) Diff(prev *Buffer) []Change {
	full := prev == nil || prev.area != b.area
	var changes []Change
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		for x := b.area.Left(); x < b.area.Right(); x++ {
			cell := b.Cell(x, y)
			if full || !cell.Equals(prev.Cell(x, y)) {
				changes = append(changes, Change{X: x, Y: y, Cell: cell})
			}
		}
	}
	return changes
}
