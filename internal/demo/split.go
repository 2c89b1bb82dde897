package demo

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
	"github.com/dshills/tessera/internal/widget"
)

// Split divides its region into two columns. The left slot is optional; the
// right child gets everything from column At onwards.
type Split struct {
	Left  widget.Optional[widget.Renderer]
	Right widget.Renderer
	At    int
}

// Areas returns the left and right columns of area. Callers drawing
// children that are not Renderers lay them out with it.
func (s Split) Areas(area core.Rect) (left, right core.Rect) {
	return area.Columns(s.At)
}

// RenderRef implements widget.Renderer.
func (s Split) RenderRef(area core.Rect, ctx *widget.Context) {
	left, right := s.Areas(area)
	s.Left.RenderRef(left, ctx)
	if s.Right != nil {
		s.Right.RenderRef(right, ctx)
	}
}

// Render implements widget.Widget.
func (s Split) Render(area core.Rect, buf *surface.Buffer) {
	widget.RenderWidget(s, area, buf)
}
