package demo

import (
	"fmt"

	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/widget"
)

// Counter shows how many frames it has been drawn in. It updates itself on
// every render, so it is drawn through widget.MutRef or Frame.RenderMut.
type Counter struct {
	Label string

	frames    int
	lastWidth int
}

// RenderMut implements widget.MutRenderer.
func (c *Counter) RenderMut(area core.Rect, ctx *widget.Context) {
	c.frames++
	c.lastWidth = area.Width
	line := widget.NewLine(fmt.Sprintf("%s%d", c.Label, c.frames)).RightAligned()
	line.RenderRef(area, ctx)
}

// Frames returns the number of renders so far.
func (c *Counter) Frames() int {
	return c.frames
}

// LastWidth returns the region width of the most recent render.
func (c *Counter) LastWidth() int {
	return c.lastWidth
}
