package renderer

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
	"github.com/dshills/tessera/internal/widget"
)

// Frame is the drawing handle passed to a Draw callback. It is only valid
// during the callback.
type Frame struct {
	buf    *surface.Buffer
	cursor *core.Position
	count  uint64
}

// Area returns the full drawable area of the frame.
func (f *Frame) Area() core.Rect {
	return f.buf.Area()
}

// Buffer returns the surface the frame draws into.
func (f *Frame) Buffer() *surface.Buffer {
	return f.buf
}

// Count returns the sequence number of the frame, starting at 1.
func (f *Frame) Count() uint64 {
	return f.count
}

// RenderWidget renders a one-shot widget into area.
func (f *Frame) RenderWidget(w widget.Widget, area core.Rect) {
	if widget.IsNil(w) {
		return
	}
	w.Render(area, f.buf)
}

// RenderRef renders a reusable drawable into area.
func (f *Frame) RenderRef(r widget.Renderer, area core.Rect) {
	widget.RenderWidget(r, area, f.buf)
}

// RenderMut renders a self-updating drawable into area.
func (f *Frame) RenderMut(m widget.MutRenderer, area core.Rect) {
	widget.MutRef(m).Render(area, f.buf)
}

// SetCursor shows the cursor at pos once the frame is flushed.
func (f *Frame) SetCursor(pos core.Position) {
	f.cursor = &pos
}

// RenderStateful renders a one-shot stateful widget into area.
func RenderStateful[S any](f *Frame, w widget.StatefulWidget[S], area core.Rect, state *S) {
	if widget.IsNil(w) {
		return
	}
	w.Render(area, f.buf, state)
}

// RenderStatefulRef renders a reusable stateful drawable into area.
func RenderStatefulRef[S any](f *Frame, r widget.StatefulRenderer[S], area core.Rect, state *S) {
	widget.StatefulRef(r).Render(area, f.buf, state)
}
