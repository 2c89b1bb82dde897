package demo

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
	"github.com/dshills/tessera/internal/widget"
)

// Border glyphs.
const (
	borderHorizontal  = "─"
	borderVertical    = "│"
	borderTopLeft     = "┌"
	borderTopRight    = "┐"
	borderBottomLeft  = "└"
	borderBottomRight = "┘"
)

// Block frames a region with an optional border and title.
type Block struct {
	Title  string
	Border bool
	Style  core.Style
}

// NewBlock creates a bordered block in the default style.
func NewBlock(title string) Block {
	return Block{Title: title, Border: true, Style: core.DefaultStyle()}
}

// Inner returns the part of area left for content.
func (b Block) Inner(area core.Rect) core.Rect {
	switch {
	case b.Border:
		return area.Inset(1, 1, 1, 1)
	case b.Title != "":
		return area.Inset(1, 0, 0, 0)
	}
	return area
}

// RenderRef implements widget.Renderer.
func (b Block) RenderRef(area core.Rect, ctx *widget.Context) {
	if area.IsEmpty() {
		return
	}
	buf := ctx.Buffer
	buf.SetStyle(area, b.Style)

	if b.Border {
		b.drawBorder(area, buf)
	}
	if b.Title != "" {
		titleArea := area.Row(0)
		if b.Border {
			titleArea = titleArea.Inset(0, 1, 0, 1)
		}
		buf.SetStringN(titleArea.X, titleArea.Y, b.Title, titleArea.Width, b.Style.Bold())
	}
}

// Render implements widget.Widget.
func (b Block) Render(area core.Rect, buf *surface.Buffer) {
	widget.RenderWidget(b, area, buf)
}

func (b Block) drawBorder(area core.Rect, buf *surface.Buffer) {
	left, right := area.Left(), area.Right()-1
	top, bottom := area.Top(), area.Bottom()-1

	for x := left; x <= right; x++ {
		buf.SetCell(x, top, core.NewCell(borderHorizontal, b.Style))
		buf.SetCell(x, bottom, core.NewCell(borderHorizontal, b.Style))
	}
	for y := top; y <= bottom; y++ {
		buf.SetCell(left, y, core.NewCell(borderVertical, b.Style))
		buf.SetCell(right, y, core.NewCell(borderVertical, b.Style))
	}
	buf.SetCell(left, top, core.NewCell(borderTopLeft, b.Style))
	buf.SetCell(right, top, core.NewCell(borderTopRight, b.Style))
	buf.SetCell(left, bottom, core.NewCell(borderBottomLeft, b.Style))
	buf.SetCell(right, bottom, core.NewCell(borderBottomRight, b.Style))
}
