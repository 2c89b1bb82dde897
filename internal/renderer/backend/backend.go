// Package backend provides the display sinks a rendered frame is flushed to.
package backend

import (
	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlL
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// OnResize registers a callback for terminal resize events.
	OnResize(callback func(width, height int))

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes pending cell changes with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}

// NullBackend is an in-memory backend for tests and headless rendering.
type NullBackend struct {
	screen        *surface.Buffer
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	resizeHandler func(width, height int)
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		screen: surface.New(core.NewRect(0, 0, width, height)),
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	area := b.screen.Area()
	return area.Width, area.Height
}

func (b *NullBackend) OnResize(callback func(width, height int)) {
	b.resizeHandler = callback
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.screen.SetCell(x, y, cell)
}

// Cell returns the cell last written at (x, y).
func (b *NullBackend) Cell(x, y int) core.Cell {
	return b.screen.Cell(x, y)
}

func (b *NullBackend) Clear() {
	b.screen.Reset()
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Screen returns the cells shown so far.
func (b *NullBackend) Screen() *surface.Buffer {
	return b.screen
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Resize simulates a terminal resize: the screen is blanked, the resize
// handler runs and a resize event is queued.
func (b *NullBackend) Resize(width, height int) {
	b.screen = surface.New(core.NewRect(0, 0, width, height))
	if b.resizeHandler != nil {
		b.resizeHandler(width, height)
	}
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
