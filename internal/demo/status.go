package demo

import (
	"strconv"

	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
	"github.com/dshills/tessera/internal/widget"
)

// MessageKind indicates how a status message is styled.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageInfo
	MessageWarning
	MessageError
)

// StatusBar is the one-row bar at the bottom of the screen: a mode badge,
// an optional message and the selection position on the right.
type StatusBar struct {
	Mode    string
	Message string
	Kind    MessageKind

	// Current is the 1-based selected item, Total the item count. The
	// position indicator is hidden when Total is zero.
	Current int
	Total   int
}

var (
	barStyle  = core.DefaultStyle().WithBackground(core.ColorGray).WithForeground(core.ColorWhite)
	modeStyle = core.DefaultStyle().Bold().WithBackground(core.ColorBlue).WithForeground(core.ColorWhite)
)

// RenderRef implements widget.Renderer. Only the first row of area is used.
func (s StatusBar) RenderRef(area core.Rect, ctx *widget.Context) {
	if area.IsEmpty() {
		return
	}
	buf := ctx.Buffer
	row := area.Row(0)
	buf.Fill(row, core.NewCell(" ", barStyle))

	x := row.X
	if s.Mode != "" {
		x, _ = buf.SetStringN(x, row.Y, " "+s.Mode+" ", row.Width, modeStyle)
		x++
	}

	pos := s.position()
	posStart := row.Right() - core.StringWidth(pos) - 1
	msgEnd := row.Right()
	if pos != "" && posStart > x {
		buf.SetString(posStart, row.Y, pos, barStyle)
		msgEnd = posStart - 1
	}

	if s.Message != "" && msgEnd > x {
		buf.SetStringN(x, row.Y, s.Message, msgEnd-x, s.messageStyle())
	}
}

// Render implements widget.Widget.
func (s StatusBar) Render(area core.Rect, buf *surface.Buffer) {
	widget.RenderWidget(s, area, buf)
}

func (s StatusBar) messageStyle() core.Style {
	switch s.Kind {
	case MessageError:
		return barStyle.WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		return barStyle.WithForeground(core.ColorYellow)
	}
	return barStyle
}

// position formats "3/10 Top", "10/10 Bot" or "5/10 44%".
func (s StatusBar) position() string {
	if s.Total <= 0 {
		return ""
	}
	cur := min(max(s.Current, 1), s.Total)
	result := strconv.Itoa(cur) + "/" + strconv.Itoa(s.Total)
	switch {
	case s.Total == 1:
		result += " All"
	case cur == 1:
		result += " Top"
	case cur == s.Total:
		result += " Bot"
	default:
		result += " " + strconv.Itoa((cur-1)*100/(s.Total-1)) + "%"
	}
	return result
}
