package demo

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// Clear blanks its region. Render it before a popup so the content
// underneath does not show through.
type Clear struct{}

// Render implements widget.Widget.
func (Clear) Render(area core.Rect, buf *surface.Buffer) {
	buf.Fill(area, core.EmptyCell())
}
