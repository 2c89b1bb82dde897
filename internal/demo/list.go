package demo

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
	"github.com/dshills/tessera/internal/widget"
)

// ListState is the part of a list that outlives a frame: which item is
// selected and which item is drawn on the first row.
type ListState struct {
	Selected *int
	Offset   int
}

// Select selects item i. A negative i clears the selection and scrolls back
// to the top.
func (s *ListState) Select(i int) {
	if i < 0 {
		s.Selected = nil
		s.Offset = 0
		return
	}
	s.Selected = &i
}

// SelectedIndex returns the selected item, if any.
func (s *ListState) SelectedIndex() (int, bool) {
	if s.Selected == nil {
		return 0, false
	}
	return *s.Selected, true
}

// Next selects the item after the current one, wrapping at count.
func (s *ListState) Next(count int) {
	if count <= 0 {
		s.Select(-1)
		return
	}
	i, ok := s.SelectedIndex()
	if !ok || i >= count-1 {
		s.Select(0)
		return
	}
	s.Select(i + 1)
}

// Previous selects the item before the current one, wrapping at zero.
func (s *ListState) Previous(count int) {
	if count <= 0 {
		s.Select(-1)
		return
	}
	i, ok := s.SelectedIndex()
	if !ok || i <= 0 || i >= count {
		s.Select(count - 1)
		return
	}
	s.Select(i - 1)
}

// List draws one item per row and highlights the selected item. It keeps
// no state of its own; selection and scrolling live in ListState.
type List struct {
	Items           []string
	Style           core.Style
	HighlightStyle  core.Style
	HighlightSymbol string
}

// NewList creates a list that highlights with reverse video.
func NewList(items ...string) List {
	return List{
		Items:           items,
		Style:           core.DefaultStyle(),
		HighlightStyle:  core.DefaultStyle().Reverse(),
		HighlightSymbol: "> ",
	}
}

// RenderWithState implements widget.StatefulRenderer. A nil state draws
// the list from the top with nothing selected.
func (l List) RenderWithState(area core.Rect, ctx *widget.Context, state *ListState) {
	if area.IsEmpty() || len(l.Items) == 0 {
		return
	}
	if state == nil {
		state = &ListState{}
	}
	buf := ctx.Buffer
	buf.SetStyle(area, l.Style)

	selected, hasSelection := state.SelectedIndex()
	if hasSelection && selected >= len(l.Items) {
		selected = len(l.Items) - 1
		state.Select(selected)
	}
	state.Offset = l.visibleOffset(state.Offset, selected, hasSelection, area.Height)

	symbolWidth := 0
	if hasSelection {
		symbolWidth = core.StringWidth(l.HighlightSymbol)
	}

	for row := 0; row < area.Height; row++ {
		i := state.Offset + row
		if i >= len(l.Items) {
			break
		}
		line := area.Row(row)
		x := line.X
		if hasSelection && i == selected {
			x, _ = buf.SetStringN(x, line.Y, l.HighlightSymbol, line.Width, l.Style)
			buf.SetStringN(x, line.Y, l.Items[i], line.Right()-x, l.Style)
			buf.SetStyle(line, l.HighlightStyle)
			continue
		}
		x += symbolWidth
		buf.SetStringN(x, line.Y, l.Items[i], line.Right()-x, l.Style)
	}
}

// Render implements widget.StatefulWidget.
func (l List) Render(area core.Rect, buf *surface.Buffer, state *ListState) {
	widget.StatefulRef[ListState](l).Render(area, buf, state)
}

// visibleOffset returns the first item to draw so that the selection is
// on screen, moving as little as possible from offset.
func (l List) visibleOffset(offset, selected int, hasSelection bool, height int) int {
	offset = min(max(offset, 0), len(l.Items)-1)
	if !hasSelection {
		return offset
	}
	if selected < offset {
		return selected
	}
	if selected >= offset+height {
		return selected - height + 1
	}
	return offset
}
