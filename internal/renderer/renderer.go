package renderer

import (
	"errors"

	"github.com/dshills/tessera/internal/renderer/backend"
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// ErrNilBackend is returned by New when no backend is given.
var ErrNilBackend = errors.New("renderer: nil backend")

// Options configures the renderer.
type Options struct {
	// Autoresize checks the backend size before each frame and resizes
	// the surfaces when it changed.
	Autoresize bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Autoresize: true,
	}
}

// CompletedFrame describes a frame after it was flushed.
type CompletedFrame struct {
	Buffer  *surface.Buffer
	Area    core.Rect
	Count   uint64
	Changes int
}

// Renderer owns the current and previous surfaces and flushes the
// difference between them to the backend. It is not safe for concurrent
// use; frames are drawn one after another.
type Renderer struct {
	opts    Options
	backend backend.Backend

	current  *surface.Buffer
	previous *surface.Buffer

	frameCount uint64
}

// New creates a renderer over an initialized backend.
func New(b backend.Backend, opts Options) (*Renderer, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	w, h := b.Size()
	area := core.NewRect(0, 0, w, h)
	return &Renderer{
		opts:     opts,
		backend:  b,
		current:  surface.New(area),
		previous: nil,
	}, nil
}

// Area returns the area of the next frame.
func (r *Renderer) Area() core.Rect {
	return r.current.Area()
}

// FrameCount returns the number of frames drawn so far.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Resize changes the frame area. The next frame is sent in full.
func (r *Renderer) Resize(width, height int) {
	area := core.NewRect(0, 0, width, height)
	if area == r.current.Area() {
		return
	}
	r.current = surface.New(area)
	r.previous = nil
	r.backend.Clear()
}

// Clear forces the next frame to be sent in full.
func (r *Renderer) Clear() {
	r.previous = nil
	r.backend.Clear()
}

// Draw runs render against a fresh frame and flushes the result.
//
// Rendering itself cannot fail; the returned error only reports a nil
// render callback.
func (r *Renderer) Draw(render func(f *Frame)) (CompletedFrame, error) {
	if render == nil {
		return CompletedFrame{}, errors.New("renderer: nil draw callback")
	}
	if r.opts.Autoresize {
		r.Resize(r.backend.Size())
	}

	r.frameCount++
	r.current.Reset()
	frame := &Frame{buf: r.current, count: r.frameCount}
	render(frame)

	changes := r.current.Diff(r.previous)
	for _, ch := range changes {
		r.backend.SetCell(ch.X, ch.Y, ch.Cell)
	}
	if frame.cursor != nil {
		r.backend.ShowCursor(frame.cursor.X, frame.cursor.Y)
	} else {
		r.backend.HideCursor()
	}
	r.backend.Show()

	done := CompletedFrame{
		Buffer:  r.current,
		Area:    r.current.Area(),
		Count:   r.frameCount,
		Changes: len(changes),
	}

	// Swap: the buffer just shown becomes the baseline for the next diff.
	next := r.previous
	if next == nil || next.Area() != r.current.Area() {
		next = surface.New(r.current.Area())
	}
	r.previous, r.current = r.current, next
	return done, nil
}
