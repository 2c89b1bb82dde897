package lua

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/widget"
)

// RenderFunc is the global a script defines to draw.
const RenderFunc = "render"

// Widget draws by calling a script's render function. It changes itself
// while rendering (it loads pending source and counts frames), so it is
// a widget.MutRenderer.
type Widget struct {
	name    string
	state   *State
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	source  string
	pending bool
	lastErr error

	// loadErr is only touched by RenderMut.
	loadErr error

	frames int
}

// WidgetOption configures a Widget.
type WidgetOption func(*Widget)

// WithLogger sets the logger for script errors and print output.
func WithLogger(logger *slog.Logger) WidgetOption {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithTimeout limits each load and render call. Zero disables the limit.
func WithTimeout(d time.Duration) WidgetOption {
	return func(w *Widget) {
		w.timeout = d
	}
}

// NewWidget creates a widget running source. The source is loaded on the
// first render.
func NewWidget(name, source string, opts ...WidgetOption) *Widget {
	w := &Widget{
		name:    name,
		logger:  slog.New(slog.DiscardHandler),
		timeout: DefaultExecutionTimeout,
		source:  source,
		pending: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "lua", "script", name)
	w.state = NewState(
		WithExecutionTimeout(w.timeout),
		WithPrint(func(msg string) {
			w.logger.Info(msg)
		}),
	)
	return w
}

// LoadWidget creates a widget from a script file.
func LoadWidget(path string, opts ...WidgetOption) (*Widget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return NewWidget(path, string(data), opts...), nil
}

// Name returns the script name.
func (w *Widget) Name() string {
	return w.name
}

// SetSource replaces the script. The new source is loaded on the next
// render. Safe to call from any goroutine.
func (w *Widget) SetSource(source string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.source = source
	w.pending = true
}

// Source returns the current script source.
func (w *Widget) Source() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.source
}

// LastError returns the error from the most recent load or render, or nil
// if it succeeded.
func (w *Widget) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Frames returns the number of renders so far.
func (w *Widget) Frames() int {
	return w.frames
}

// Close releases the Lua state.
func (w *Widget) Close() error {
	return w.state.Close()
}

// RenderMut implements widget.MutRenderer. Errors are recorded, never
// returned; cells written before a failure are kept. A script that fails
// to load leaves the previous one drawing, and its load error is reported
// until the source changes again.
func (w *Widget) RenderMut(area core.Rect, ctx *widget.Context) {
	w.frames++
	reloaded := w.reload()
	if area.IsEmpty() {
		if reloaded {
			w.setError(w.loadErr)
		}
		return
	}

	err := w.render(area, ctx)
	if w.loadErr != nil {
		err = w.loadErr
	}
	w.setError(err)
}

func (w *Widget) render(area core.Rect, ctx *widget.Context) error {
	if !w.state.HasFunc(RenderFunc) {
		return ErrNoRenderFunc
	}
	L := w.state.LuaState()
	args := []lua.LValue{areaTable(L, area), newDrawContext(L, area, ctx, w.frames)}
	if _, err := w.state.Call(context.Background(), RenderFunc, args...); err != nil {
		return fmt.Errorf("render %s: %w", w.name, err)
	}
	return nil
}

// reload loads pending source and reports whether there was any.
func (w *Widget) reload() bool {
	w.mu.Lock()
	source, pending := w.source, w.pending
	w.pending = false
	w.mu.Unlock()

	if !pending {
		return false
	}
	w.loadErr = nil
	if err := w.state.Replace(source); err != nil {
		w.loadErr = fmt.Errorf("load %s: %w", w.name, err)
	}
	return true
}

// setError records err, logging it once when it first appears.
func (w *Widget) setError(err error) {
	w.mu.Lock()
	prev := w.lastErr
	w.lastErr = err
	w.mu.Unlock()

	switch {
	case err != nil && (prev == nil || prev.Error() != err.Error()):
		w.logger.Warn("script failed", "error", err)
	case err == nil && prev != nil:
		w.logger.Info("script recovered")
	}
}

func areaTable(L *lua.LState, area core.Rect) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "x", lua.LNumber(area.X))
	L.SetField(t, "y", lua.LNumber(area.Y))
	L.SetField(t, "width", lua.LNumber(area.Width))
	L.SetField(t, "height", lua.LNumber(area.Height))
	return t
}

// newDrawContext builds the ctx table a script draws through. Its methods
// are called with colon syntax, so argument 1 is the table itself.
func newDrawContext(L *lua.LState, area core.Rect, ctx *widget.Context, frame int) *lua.LTable {
	t := L.NewTable()
	L.SetFuncs(t, map[string]lua.LGFunction{
		"width": func(L *lua.LState) int {
			L.Push(lua.LNumber(area.Width))
			return 1
		},
		"height": func(L *lua.LState) int {
			L.Push(lua.LNumber(area.Height))
			return 1
		},
		"frame": func(L *lua.LState) int {
			L.Push(lua.LNumber(frame))
			return 1
		},
		"set_string": func(L *lua.LState) int {
			x := L.CheckInt(2)
			y := L.CheckInt(3)
			text := L.CheckString(4)
			style, _, err := styleArg(L, 5)
			if err != nil {
				L.ArgError(5, err.Error())
				return 0
			}
			end := x
			if x >= 0 && y >= 0 && y < area.Height && x < area.Width {
				end, _ = ctx.Buffer.SetStringN(area.X+x, area.Y+y, text, area.Width-x, style)
				end -= area.X
			}
			L.Push(lua.LNumber(end))
			return 1
		},
		"set_style": func(L *lua.LState) int {
			rect := core.NewRect(area.X+L.CheckInt(2), area.Y+L.CheckInt(3), L.CheckInt(4), L.CheckInt(5))
			style, remove, err := styleArg(L, 6)
			if err != nil {
				L.ArgError(6, err.Error())
				return 0
			}
			ctx.Buffer.PatchStyle(rect.Intersection(area), style, remove)
			return 0
		},
	})
	return t
}

// styleArg reads an optional {fg=, bg=, attrs=} table. Attribute names
// prefixed with '-' are returned as the attributes to remove.
func styleArg(L *lua.LState, n int) (core.Style, core.Attribute, error) {
	style := core.DefaultStyle()
	if L.GetTop() < n || L.Get(n) == lua.LNil {
		return style, core.AttrNone, nil
	}
	t, ok := L.Get(n).(*lua.LTable)
	if !ok {
		return style, core.AttrNone, errors.New("style must be a table")
	}
	if v, ok := t.RawGetString("fg").(lua.LString); ok {
		c, err := core.ParseColor(string(v))
		if err != nil {
			return style, core.AttrNone, err
		}
		style = style.WithForeground(c)
	}
	if v, ok := t.RawGetString("bg").(lua.LString); ok {
		c, err := core.ParseColor(string(v))
		if err != nil {
			return style, core.AttrNone, err
		}
		style = style.WithBackground(c)
	}
	var remove core.Attribute
	if v, ok := t.RawGetString("attrs").(lua.LString); ok {
		var add core.Attribute
		add, remove = core.ParseAttributeChanges(string(v))
		style = style.WithAttributes(add)
	}
	return style, remove, nil
}
