package backend

import (
	"testing"

	"github.com/dshills/tessera/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetCell(t *testing.T) {
	b := NewNullBackend(80, 24)

	cell := core.NewCell("X", core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	if got := b.Cell(10, 5); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if !b.Cell(-1, 0).Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.SetCell(10, 10, core.NewCell("X", core.DefaultStyle()))
	b.SetCell(20, 20, core.NewCell("Y", core.DefaultStyle()))
	b.Clear()

	if !b.Cell(10, 10).Equals(core.EmptyCell()) {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)

	var gotW, gotH int
	b.OnResize(func(w, h int) {
		gotW, gotH = w, h
	})
	b.Resize(100, 40)

	if gotW != 100 || gotH != 40 {
		t.Errorf("resize callback got (%d, %d), want (100, 40)", gotW, gotH)
	}
	if w, h := b.Size(); w != 100 || h != 40 {
		t.Errorf("size after resize: (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 10)

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'q'})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'q' {
		t.Errorf("PollEvent = %+v", ev)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("mask should contain ctrl and shift")
	}
	if m.Has(ModAlt) {
		t.Error("mask should not contain alt")
	}
}
