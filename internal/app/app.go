// Package app wires configuration, the terminal backend, the frame
// renderer and the demo widgets into the tessera application, and runs
// its event loop.
package app

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/dshills/tessera/internal/config"
	"github.com/dshills/tessera/internal/demo"
	"github.com/dshills/tessera/internal/plugin/lua"
	"github.com/dshills/tessera/internal/renderer"
	"github.com/dshills/tessera/internal/renderer/backend"
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
	"github.com/dshills/tessera/internal/widget"
)

// Options configures the application.
type Options struct {
	// Config holds the settings. Nil means config.Default().
	Config *config.Config

	// Backend is the terminal to draw on. Only Run needs it.
	Backend backend.Backend

	// Logger receives application logs. Nil means NullLogger.
	Logger *Logger
}

// App is the tessera application.
type App struct {
	cfg     *config.Config
	logger  *Logger
	backend backend.Backend

	renderer *renderer.Renderer

	list      demo.List
	listState demo.ListState
	detail    *detailPane
	script    *lua.Widget
	watcher   *lua.Watcher

	running atomic.Bool
}

// New creates the application. It validates the configuration and loads
// the Lua script, if one is configured.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	highlight, _ := core.ParseColor(cfg.UI.HighlightColor)
	list := demo.NewList(cfg.UI.Items...)
	list.HighlightSymbol = cfg.UI.HighlightSymbol
	list.HighlightStyle = core.DefaultStyle().WithBackground(highlight).Bold()

	app := &App{
		cfg:     cfg,
		logger:  logger,
		backend: opts.Backend,
		list:    list,
		detail: &detailPane{
			block:   demo.NewBlock(""),
			counter: demo.Counter{Label: "frame "},
		},
	}
	if len(cfg.UI.Items) > 0 {
		app.listState.Select(0)
	}

	if cfg.Script.Path != "" {
		script, err := lua.LoadWidget(cfg.Script.Path,
			lua.WithLogger(logger.WithComponent("lua").Slog()),
			lua.WithTimeout(cfg.Script.TimeoutDuration()),
		)
		if err != nil {
			return nil, &InitError{Component: "script", Err: err}
		}
		app.script = script
		app.detail.script = script
	}

	logger.Debug("application created", "items", len(cfg.UI.Items), "script", cfg.Script.Path)
	return app, nil
}

// Run draws the screen and handles input until the user quits or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()

	r, err := renderer.New(a.backend, renderer.DefaultOptions())
	if err != nil {
		return &InitError{Component: "renderer", Err: err}
	}
	a.renderer = r

	if a.script != nil && a.cfg.Script.Watch {
		if err := a.startWatcher(); err != nil {
			a.logger.Warn("script watch disabled", "error", err)
		}
	}
	defer a.stopWatcher()

	stop := context.AfterFunc(ctx, func() {
		a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	})
	defer stop()

	a.logger.Info("event loop started")
	defer a.logger.Info("event loop stopped")

	for {
		if err := a.draw(); err != nil {
			return err
		}

		ev := a.backend.PollEvent()
		if ctx.Err() != nil {
			return nil
		}
		if err := a.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func (a *App) startWatcher() error {
	w, err := lua.Watch(a.cfg.Script.Path, a.script,
		lua.WithWatcherLogger(a.logger.WithComponent("watcher").Slog()),
		lua.WithReloadHook(func() {
			a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
		}),
	)
	if err != nil {
		return NewOperationError("watch", a.cfg.Script.Path, err)
	}
	a.watcher = w
	return nil
}

func (a *App) stopWatcher() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Close(); err != nil {
		a.logger.Warn("closing script watcher", "error", err)
	}
	a.watcher = nil
}

// handleEvent applies one input event. It returns ErrQuit when the user
// asks to leave.
func (a *App) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		a.renderer.Resize(ev.Width, ev.Height)
	case backend.EventKey:
		return a.handleKey(ev)
	}
	return nil
}

func (a *App) handleKey(ev backend.Event) error {
	count := len(a.list.Items)
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyUp:
		a.listState.Previous(count)
	case backend.KeyDown:
		a.listState.Next(count)
	case backend.KeyCtrlL:
		a.renderer.Clear()
	case backend.KeyRune:
		switch ev.Rune {
		case 'q':
			return ErrQuit
		case 'k':
			a.listState.Previous(count)
		case 'j':
			a.listState.Next(count)
		}
	}
	return nil
}

func (a *App) draw() error {
	_, err := a.renderer.Draw(a.drawFrame)
	if err != nil {
		return NewOperationError("draw", "", err)
	}
	return nil
}

// drawFrame lays out the screen: the menu and detail columns, and the
// status bar on the last row.
func (a *App) drawFrame(f *renderer.Frame) {
	area := f.Area()
	body := area
	var statusArea core.Rect
	if a.cfg.UI.ShowStatus && area.Height > 1 {
		body, statusArea = area.Rows(area.Height - 1)
	}

	left, right := demo.Split{At: a.cfg.UI.SplitAt}.Areas(body)
	if a.cfg.UI.SplitAt > 0 {
		menu := menuPane{block: demo.NewBlock(a.cfg.UI.Title), list: a.list}
		renderer.RenderStatefulRef[demo.ListState](f, menu, left, &a.listState)
	}

	selected, ok := a.listState.SelectedIndex()
	a.detail.title = ""
	if ok && selected < len(a.list.Items) {
		a.detail.title = a.list.Items[selected]
	}
	f.RenderMut(a.detail, right)

	status := widget.None[demo.StatusBar]()
	if !statusArea.IsEmpty() {
		status = widget.Some(a.status(selected, ok))
	}
	f.RenderRef(status, statusArea)
}

func (a *App) status(selected int, ok bool) demo.StatusBar {
	bar := demo.StatusBar{
		Mode:    "LIST",
		Message: "j/k move  q quit",
		Total:   len(a.list.Items),
	}
	if ok {
		bar.Current = selected + 1
	}
	if a.script != nil {
		if err := a.script.LastError(); err != nil {
			bar.Message, _, _ = strings.Cut(err.Error(), "\n")
			bar.Kind = demo.MessageError
		}
	}
	return bar
}

// Snapshot renders a single frame of the given size without a terminal.
func (a *App) Snapshot(width, height int) (*surface.Buffer, error) {
	r, err := renderer.New(backend.NewNullBackend(width, height), renderer.Options{})
	if err != nil {
		return nil, err
	}
	done, err := r.Draw(a.drawFrame)
	if err != nil {
		return nil, NewOperationError("snapshot", "", err)
	}
	return done.Buffer.Clone(), nil
}

// Selected returns the selected menu item, if any.
func (a *App) Selected() (string, bool) {
	i, ok := a.listState.SelectedIndex()
	if !ok || i >= len(a.list.Items) {
		return "", false
	}
	return a.list.Items[i], true
}

// Close releases the Lua script.
func (a *App) Close() error {
	if a.script == nil {
		return nil
	}
	return a.script.Close()
}
