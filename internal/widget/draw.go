package widget

import (
	"fmt"

	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// Draw renders d into buf within area, picking the capability d offers.
// Strings and fmt.Stringers are drawn as Text. It reports false, drawing
// nothing, when d is nil or not drawable.
func Draw(area core.Rect, buf *surface.Buffer, d any) bool {
	if IsNil(d) {
		return false
	}
	switch v := d.(type) {
	case Widget:
		v.Render(area, buf)
	case Renderer:
		RenderWidget(v, area, buf)
	case MutRenderer:
		v.RenderMut(area, NewContext(buf))
	case string:
		Text(v).Render(area, buf)
	case fmt.Stringer:
		Text(v.String()).Render(area, buf)
	default:
		return false
	}
	return true
}
