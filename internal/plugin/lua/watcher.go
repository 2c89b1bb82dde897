package lua

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Watcher reloads a Widget's script whenever the file changes.
//
// It watches the file's directory rather than the file, so editors that
// save by writing a new file and renaming it over the old one are seen.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	widget  *Widget
	logger  *slog.Logger

	onReload func()
	reloads  atomic.Int64

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithReloadHook calls fn after every reload, from the watcher goroutine.
func WithReloadHook(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithWatcherLogger sets the logger for reload failures.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watch starts watching path and feeding changes into widget.
func Watch(path string, widget *Widget, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("watch script: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    absPath,
		widget:  widget,
		logger:  slog.New(slog.DiscardHandler),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.closedWg.Add(1)
	go w.processLoop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Reloads returns how many times the script was reloaded.
func (w *Watcher) Reloads() int64 {
	return w.reloads.Load()
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("script watch error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("script reload failed", "path", w.path, "error", err)
		return
	}
	w.widget.SetSource(string(data))
	w.reloads.Add(1)
	w.logger.Debug("script reloaded", "path", w.path)
	if w.onReload != nil {
		w.onReload()
	}
}
