package widget

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// RenderWidget renders r the way a Widget would: it wraps buf in a fresh
// Context and calls RenderRef. A nil r, or a nil pointer in r, draws
// nothing.
//
// Types that implement Renderer satisfy Widget with a one-line method:
//
//	func (t Thing) Render(area core.Rect, buf *surface.Buffer) {
//		widget.RenderWidget(t, area, buf)
//	}
func RenderWidget(r Renderer, area core.Rect, buf *surface.Buffer) {
	if IsNil(r) {
		return
	}
	r.RenderRef(area, NewContext(buf))
}

// Ref adapts a Renderer to Widget. The adapter only borrows r, so r stays
// usable after the widget is rendered.
func Ref(r Renderer) Widget {
	return refWidget{r: r}
}

type refWidget struct {
	r Renderer
}

func (w refWidget) Render(area core.Rect, buf *surface.Buffer) {
	RenderWidget(w.r, area, buf)
}

// StatefulRef adapts a StatefulRenderer to StatefulWidget.
func StatefulRef[S any](r StatefulRenderer[S]) StatefulWidget[S] {
	return statefulRefWidget[S]{r: r}
}

type statefulRefWidget[S any] struct {
	r StatefulRenderer[S]
}

func (w statefulRefWidget[S]) Render(area core.Rect, buf *surface.Buffer, state *S) {
	if IsNil(w.r) {
		return
	}
	w.r.RenderWithState(area, NewContext(buf), state)
}

// MutRef adapts a MutRenderer to Widget. Each Render call goes through m,
// so changes m makes to itself persist in the caller's value.
func MutRef(m MutRenderer) Widget {
	return mutRefWidget{m: m}
}

type mutRefWidget struct {
	m MutRenderer
}

func (w mutRefWidget) Render(area core.Rect, buf *surface.Buffer) {
	if IsNil(w.m) {
		return
	}
	w.m.RenderMut(area, NewContext(buf))
}
