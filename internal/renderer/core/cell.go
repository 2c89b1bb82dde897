package core

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// Cell represents a single terminal cell.
type Cell struct {
	// Symbol is the grapheme cluster displayed in the cell.
	// An empty symbol marks the continuation of a wide cluster.
	Symbol string

	// Width is the display width of this cell.
	// 0 for continuation cells, 1 for normal chars, 2 for wide CJK chars.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{
		Symbol: " ",
		Width:  1,
		Style:  DefaultStyle(),
	}
}

// NewCell creates a cell with the given symbol and style.
func NewCell(symbol string, style Style) Cell {
	return Cell{
		Symbol: symbol,
		Width:  StringWidth(symbol),
		Style:  style,
	}
}

// ContinuationCell returns the placeholder written after a wide cluster.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// Reset turns c back into an empty cell.
func (c *Cell) Reset() {
	*c = EmptyCell()
}

// IsContinuation reports whether c is the second half of a wide cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Symbol == ""
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Symbol == other.Symbol &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// RuneWidth returns the display width of a single rune: 0 for control
// characters, 2 for East Asian wide and fullwidth runes, 1 otherwise.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth returns the number of terminal columns s occupies,
// measured per grapheme cluster.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
