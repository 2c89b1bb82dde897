package widget

import (
	"reflect"

	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// Optional holds a drawable that may be absent.
//
// Rendering an Optional renders the contained drawable when there is one
// and draws nothing otherwise, so a parent can render an optional child
// slot (a border, a title) unconditionally. The zero value is absent.
type Optional[R Renderer] struct {
	value R
	ok    bool
}

// Some returns an Optional holding r. A nil interface or nil pointer r
// yields an absent Optional.
func Some[R Renderer](r R) Optional[R] {
	if IsNil(r) {
		return Optional[R]{}
	}
	return Optional[R]{value: r, ok: true}
}

// None returns an absent Optional.
func None[R Renderer]() Optional[R] {
	return Optional[R]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[R Renderer](p *R) Optional[R] {
	if p == nil {
		return Optional[R]{}
	}
	return Some(*p)
}

// Maybe wraps a possibly-nil Renderer.
func Maybe(r Renderer) Optional[Renderer] {
	return Some(r)
}

// IsSome reports whether a drawable is present.
func (o Optional[R]) IsSome() bool {
	return o.ok
}

// Get returns the contained drawable and whether it is present.
func (o Optional[R]) Get() (R, bool) {
	return o.value, o.ok
}

// RenderRef implements Renderer.
func (o Optional[R]) RenderRef(area core.Rect, ctx *Context) {
	if o.ok {
		o.value.RenderRef(area, ctx)
	}
}

// Render implements Widget.
func (o Optional[R]) Render(area core.Rect, buf *surface.Buffer) {
	RenderWidget(o, area, buf)
}

// IsNil reports whether r is nil or an interface holding a nil pointer,
// map, slice, func or channel. Such values draw nothing.
func IsNil(r any) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
