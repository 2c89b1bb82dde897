package widget

import "github.com/dshills/tessera/internal/renderer/surface"

// Context carries the inputs of a single reference render call.
//
// It holds the surface being drawn into and is the place for any future
// cross-cutting render input. A Context is built immediately before a call
// and discarded after it; drawables must not keep it.
type Context struct {
	Buffer *surface.Buffer
}

// NewContext wraps buf for one render call.
func NewContext(buf *surface.Buffer) *Context {
	return &Context{Buffer: buf}
}
