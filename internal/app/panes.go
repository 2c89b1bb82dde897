package app

import (
	"github.com/dshills/tessera/internal/demo"
	"github.com/dshills/tessera/internal/plugin/lua"
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/widget"
)

// descriptions explains each capability listed in the default menu.
var descriptions = map[string]string{
	"Widget":          "One-shot drawing: the drawable is handed over to render once.",
	"StatefulWidget":  "One-shot drawing with caller-owned state.",
	"Render":          "Reusable drawing through a shared reference.",
	"RenderWithState": "Reusable drawing that updates caller-owned state.",
	"RenderMut":       "Drawing that updates the drawable itself.",
	"Optional":        "An absent child draws nothing.",
	"Text":            "Plain text at the top-left corner, cut at the edge.",
}

// menuPane is the left column: a bordered list. The selection lives in
// the App and is passed in as state.
type menuPane struct {
	block demo.Block
	list  demo.List
}

// RenderWithState implements widget.StatefulRenderer.
func (p menuPane) RenderWithState(area core.Rect, ctx *widget.Context, state *demo.ListState) {
	p.block.RenderRef(area, ctx)
	p.list.RenderWithState(p.block.Inner(area), ctx, state)
}

// detailPane is the right column: the selected item's description, the
// script output and a frame counter on the last row. The counter and the
// script change as they draw, so the pane is a MutRenderer.
type detailPane struct {
	block   demo.Block
	title   string
	counter demo.Counter
	script  *lua.Widget
}

// RenderMut implements widget.MutRenderer.
func (p *detailPane) RenderMut(area core.Rect, ctx *widget.Context) {
	p.block.RenderRef(area, ctx)
	inner := p.block.Inner(area)
	if inner.IsEmpty() {
		return
	}

	body, footer := inner.Rows(inner.Height - 1)
	widget.NewLine(p.title).Styled(core.DefaultStyle().Bold()).RenderRef(body.Row(0), ctx)
	widget.Text(descriptions[p.title]).RenderRef(body.Row(1), ctx)

	if p.script != nil {
		_, scriptArea := body.Rows(3)
		p.script.RenderMut(scriptArea, ctx)
	}
	p.counter.RenderMut(footer, ctx)
}
