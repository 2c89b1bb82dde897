package lua

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.lua")
	v1 := `function render(a, ctx) ctx:set_string(0, 0, "1") end`
	v2 := `function render(a, ctx) ctx:set_string(0, 0, "2") end`
	if err := os.WriteFile(path, []byte(v1), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWidget(path, v1)
	defer w.Close()

	reloaded := make(chan struct{}, 16)
	watcher, err := Watch(path, w, WithReloadHook(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}))
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(path, []byte(v2), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for w.Source() != v2 {
		select {
		case <-reloaded:
		case <-deadline:
			t.Fatalf("script not reloaded; source = %q", w.Source())
		}
	}
	if watcher.Reloads() == 0 {
		t.Error("Reloads() = 0 after a reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.lua")
	if err := os.WriteFile(path, []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWidget(path, "x = 1")
	defer w.Close()
	watcher, err := Watch(path, w)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.lua"), []byte("y = 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	if got := w.Source(); got != "x = 1" {
		t.Errorf("Source() = %q, want unchanged", got)
	}
}

func TestWatchMissingFile(t *testing.T) {
	w := NewWidget("missing", "")
	defer w.Close()
	if _, err := Watch(filepath.Join(t.TempDir(), "missing.lua"), w); err == nil {
		t.Error("Watch() on a missing file should fail")
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.lua")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w := NewWidget(path, "")
	defer w.Close()

	watcher, err := Watch(path, w)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if watcher.Path() != path {
		t.Errorf("Path() = %q, want %q", watcher.Path(), path)
	}
	if err := watcher.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := watcher.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close() error = %v, want ErrWatcherClosed", err)
	}
}
