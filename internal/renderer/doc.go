// Package renderer drives drawing frames to a backend.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│     Renderer (Draw, Frame)              │
//	├─────────────────────────────────────────┤
//	│  widget contracts │ surface.Buffer      │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend         │
//	└─────────────────────────────────────────┘
//
// Each Draw call hands the caller a Frame over a fresh surface. Drawables
// render into it; afterwards only the cells that changed since the previous
// frame are sent to the backend.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r, _ := renderer.New(term, renderer.DefaultOptions())
//	r.Draw(func(f *renderer.Frame) {
//		f.RenderWidget(widget.Text("hello"), f.Area())
//	})
package renderer
