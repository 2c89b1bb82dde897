package core

import "fmt"

// Position is a cell coordinate (0-indexed, X is the column).
type Position struct {
	X int
	Y int
}

// Rect is a rectangular region of cells: an origin plus a size.
// A zero width or height is a valid, empty region.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle. Negative sizes are clamped to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Left returns the first column.
func (r Rect) Left() int { return r.X }

// Right returns the column just past the rectangle.
func (r Rect) Right() int { return r.X + max(r.Width, 0) }

// Top returns the first row.
func (r Rect) Top() int { return r.Y }

// Bottom returns the row just past the rectangle.
func (r Rect) Bottom() int { return r.Y + max(r.Height, 0) }

// Contains returns true if pos is within the rectangle.
func (r Rect) Contains(pos Position) bool {
	return pos.X >= r.Left() && pos.X < r.Right() &&
		pos.Y >= r.Top() && pos.Y < r.Bottom()
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() && r.Right() > other.Left() &&
		r.Top() < other.Bottom() && r.Bottom() > other.Top()
}

// Intersection returns the overlapping region of two rectangles.
// Non-overlapping rectangles yield an empty Rect at r's origin.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{X: r.X, Y: r.Y}
	}
	x := max(r.Left(), other.Left())
	y := max(r.Top(), other.Top())
	return Rect{
		X:      x,
		Y:      y,
		Width:  min(r.Right(), other.Right()) - x,
		Height: min(r.Bottom(), other.Bottom()) - y,
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := min(r.Left(), other.Left())
	y := min(r.Top(), other.Top())
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Inset returns a rectangle shrunk by the given amounts, never below zero size.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return NewRect(r.X+left, r.Y+top, r.Width-left-right, r.Height-top-bottom)
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Columns splits r at column offset at (relative to r.X), clamped to r.
func (r Rect) Columns(at int) (left, right Rect) {
	at = min(max(at, 0), max(r.Width, 0))
	left = NewRect(r.X, r.Y, at, r.Height)
	right = NewRect(r.X+at, r.Y, r.Width-at, r.Height)
	return left, right
}

// Rows splits r at row offset at (relative to r.Y), clamped to r.
func (r Rect) Rows(at int) (top, bottom Rect) {
	at = min(max(at, 0), max(r.Height, 0))
	top = NewRect(r.X, r.Y, r.Width, at)
	bottom = NewRect(r.X, r.Y+at, r.Width, r.Height-at)
	return top, bottom
}

// Row returns the single-row rectangle at offset i, or an empty one when
// i is outside r.
func (r Rect) Row(i int) Rect {
	if i < 0 || i >= r.Height {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X, Y: r.Y + i, Width: r.Width, Height: 1}
}

// Equals returns true if two rectangles are identical.
func (r Rect) Equals(other Rect) bool {
	return r == other
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
