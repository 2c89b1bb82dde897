// Package surface provides the character-cell grid that drawables paint
// into.
//
// A Buffer covers a rectangular Area, which may start away from the
// origin. Every write is bounds-checked: anything that falls outside the
// Area is dropped silently, so callers never have to clip themselves and a
// write can never fail.
package surface

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/tessera/internal/renderer/core"
)

// Buffer is a grid of cells covering Area.
type Buffer struct {
	area  core.Rect
	cells []core.Cell
}

// New creates a buffer over area filled with blank cells.
func New(area core.Rect) *Buffer {
	return NewFilled(area, core.EmptyCell())
}

// NewFilled creates a buffer over area with every cell set to cell.
func NewFilled(area core.Rect, cell core.Cell) *Buffer {
	area = core.NewRect(area.X, area.Y, area.Width, area.Height)
	b := &Buffer{
		area:  area,
		cells: make([]core.Cell, area.Area()),
	}
	for i := range b.cells {
		b.cells[i] = cell
	}
	return b
}

// WithLines creates a buffer at the origin holding the given lines in the
// default style. The width is that of the widest line.
func WithLines(lines ...string) *Buffer {
	width := 0
	for _, l := range lines {
		width = max(width, core.StringWidth(l))
	}
	b := New(core.NewRect(0, 0, width, len(lines)))
	for y, l := range lines {
		b.SetString(0, y, l, core.DefaultStyle())
	}
	return b
}

// Area returns the region covered by the buffer.
func (b *Buffer) Area() core.Rect {
	return b.area
}

// index returns the slice index of (x, y), or false when outside Area.
func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(core.Position{X: x, Y: y}) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

// Cell returns the cell at (x, y). Positions outside the buffer return an
// empty cell.
func (b *Buffer) Cell(x, y int) core.Cell {
	i, ok := b.index(x, y)
	if !ok {
		return core.EmptyCell()
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Positions outside the buffer are ignored.
func (b *Buffer) SetCell(x, y int, cell core.Cell) {
	if i, ok := b.index(x, y); ok {
		b.cells[i] = cell
	}
}

// SetString writes s starting at (x, y) until the buffer's right edge.
// It returns the position just after the last written cell.
func (b *Buffer) SetString(x, y int, s string, style core.Style) (int, int) {
	return b.SetStringN(x, y, s, math.MaxInt, style)
}

// SetStringN writes at most maxWidth columns of s starting at (x, y).
//
// The string is walked by grapheme cluster. A cluster that would not fit
// entirely is not written and ends the write. Wide clusters are followed by
// a continuation cell. Zero-width clusters (control characters) are
// skipped. Cells left of the buffer are consumed without being written.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style core.Style) (int, int) {
	if y < b.area.Top() || y >= b.area.Bottom() || maxWidth <= 0 {
		return x, y
	}
	limit := b.area.Right()
	if maxWidth < limit-x {
		limit = x + maxWidth
	}

	state := -1
	for len(s) > 0 && x < limit {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		if x >= b.area.Left() {
			b.SetCell(x, y, core.Cell{Symbol: cluster, Width: w, Style: style})
			for i := 1; i < w; i++ {
				b.SetCell(x+i, y, core.ContinuationCell(style))
			}
		}
		x += w
	}
	return x, y
}

// SetStyle merges style into every cell of rect that lies inside the buffer.
func (b *Buffer) SetStyle(rect core.Rect, style core.Style) {
	b.PatchStyle(rect, style, core.AttrNone)
}

// PatchStyle merges style into every cell of rect that lies inside the
// buffer and clears the attributes in remove.
func (b *Buffer) PatchStyle(rect core.Rect, style core.Style, remove core.Attribute) {
	r := rect.Intersection(b.area)
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			i, _ := b.index(x, y)
			b.cells[i].Style = b.cells[i].Style.Patch(style, remove)
		}
	}
}

// Fill sets every cell of rect that lies inside the buffer to cell.
func (b *Buffer) Fill(rect core.Rect, cell core.Cell) {
	r := rect.Intersection(b.area)
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			i, _ := b.index(x, y)
			b.cells[i] = cell
		}
	}
}

// Reset blanks every cell.
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i].Reset()
	}
}

// Resize changes the covered area, preserving cells that remain inside it.
func (b *Buffer) Resize(area core.Rect) {
	area = core.NewRect(area.X, area.Y, area.Width, area.Height)
	if area == b.area {
		return
	}
	next := New(area)
	overlap := area.Intersection(b.area)
	for y := overlap.Top(); y < overlap.Bottom(); y++ {
		for x := overlap.Left(); x < overlap.Right(); x++ {
			next.SetCell(x, y, b.Cell(x, y))
		}
	}
	*b = *next
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{area: b.area, cells: make([]core.Cell, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether both buffers cover the same area with identical
// cells.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.area != other.area || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if !b.cells[i].Equals(other.cells[i]) {
			return false
		}
	}
	return true
}

// Lines returns the symbols of each row. Continuation cells are skipped.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.area.Height)
	var sb strings.Builder
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		sb.Reset()
		for x := b.area.Left(); x < b.area.Right(); x++ {
			c := b.Cell(x, y)
			if c.IsContinuation() {
				continue
			}
			sb.WriteString(c.Symbol)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String returns the buffer rows joined by newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
