package widget

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// Text is plain text usable anywhere a drawable is expected.
//
// It is written at the top-left corner of the region in the default style
// and cut off at the region's right edge. Both Text values and *Text
// pointers are drawables, so text can be handed over or shared.
type Text string

// RenderRef implements Renderer.
func (t Text) RenderRef(area core.Rect, ctx *Context) {
	if area.IsEmpty() {
		return
	}
	ctx.Buffer.SetStringN(area.X, area.Y, string(t), area.Width, core.DefaultStyle())
}

// Render implements Widget.
func (t Text) Render(area core.Rect, buf *surface.Buffer) {
	RenderWidget(t, area, buf)
}

// Alignment is the horizontal placement of a Line within its region.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Line is a single styled, aligned line of text. Build it with NewLine so
// the style starts out as the default style.
type Line struct {
	Content   string
	Style     core.Style
	Alignment Alignment
}

// NewLine creates a left aligned line in the default style.
func NewLine(content string) Line {
	return Line{Content: content, Style: core.DefaultStyle()}
}

// Styled returns a copy of l using style.
func (l Line) Styled(style core.Style) Line {
	l.Style = style
	return l
}

// Centered returns a copy of l centered in its region.
func (l Line) Centered() Line {
	l.Alignment = AlignCenter
	return l
}

// RightAligned returns a copy of l flushed against the right edge.
func (l Line) RightAligned() Line {
	l.Alignment = AlignRight
	return l
}

// Width returns the display width of the content.
func (l Line) Width() int {
	return core.StringWidth(l.Content)
}

// RenderRef implements Renderer. Only the first row of area is used.
func (l Line) RenderRef(area core.Rect, ctx *Context) {
	if area.IsEmpty() {
		return
	}
	offset := 0
	if w := l.Width(); w < area.Width {
		switch l.Alignment {
		case AlignCenter:
			offset = (area.Width - w) / 2
		case AlignRight:
			offset = area.Width - w
		}
	}
	ctx.Buffer.SetStringN(area.X+offset, area.Y, l.Content, area.Width-offset, l.Style)
}

// Render implements Widget.
func (l Line) Render(area core.Rect, buf *surface.Buffer) {
	RenderWidget(l, area, buf)
}
