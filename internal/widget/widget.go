package widget

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// Widget is a one-shot drawable.
//
// Render draws the widget into buf within area. Calling Render hands the
// widget over: the caller must treat the value as spent afterwards. Widgets
// of this kind are meant to be rebuilt every frame as drawing commands.
//
// It is common to render widgets inside other widgets:
//
//	func (g Greeting) Render(area core.Rect, buf *surface.Buffer) {
//		widget.NewLine("Hello").Render(area, buf)
//	}
type Widget interface {
	Render(area core.Rect, buf *surface.Buffer)
}

// StatefulWidget is a one-shot drawable that also receives state owned by
// the application.
//
// The state outlives the widget. Whatever the widget writes into it during
// Render is the only thing remembered for the next frame, which is how a
// list keeps its scroll offset stable while the selection moves inside the
// viewport.
type StatefulWidget[S any] interface {
	Render(area core.Rect, buf *surface.Buffer, state *S)
}

// Renderer is a drawable that renders by reference.
//
// RenderRef must not modify the receiver or anything reachable from it;
// the only side effect is writing into ctx.Buffer. Because the drawable
// survives the call it can be stored in a struct field, rendered again
// next frame, or kept in a []Renderer next to drawables of other types.
//
// Embed NopRenderer to get a RenderRef that draws nothing.
type Renderer interface {
	RenderRef(area core.Rect, ctx *Context)
}

// StatefulRenderer is the by-reference counterpart of StatefulWidget.
type StatefulRenderer[S any] interface {
	RenderWithState(area core.Rect, ctx *Context, state *S)
}

// MutRenderer renders through an exclusive reference and may update the
// drawable's own fields while doing so, for example to cache a layout
// computed on the first frame. Output of a later call may differ from an
// earlier one, but only as a function of what earlier calls stored.
type MutRenderer interface {
	RenderMut(area core.Rect, ctx *Context)
}

// NopRenderer provides the default RenderRef, which draws nothing.
type NopRenderer struct{}

// RenderRef implements Renderer.
func (NopRenderer) RenderRef(core.Rect, *Context) {}

// NopStatefulRenderer provides the default RenderWithState, which draws
// nothing and leaves the state alone.
type NopStatefulRenderer[S any] struct{}

// RenderWithState implements StatefulRenderer.
func (NopStatefulRenderer[S]) RenderWithState(core.Rect, *Context, *S) {}

// NopMutRenderer provides the default RenderMut, which draws nothing.
type NopMutRenderer struct{}

// RenderMut implements MutRenderer.
func (*NopMutRenderer) RenderMut(core.Rect, *Context) {}
