package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/tessera/internal/config/loader"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tessera.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[ui]
splitAt = 10
items = ["one", "two"]

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.SplitAt != 10 {
		t.Errorf("SplitAt = %d, want 10", cfg.UI.SplitAt)
	}
	if !reflect.DeepEqual(cfg.UI.Items, []string{"one", "two"}) {
		t.Errorf("Items = %v", cfg.UI.Items)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched settings keep their defaults.
	if cfg.UI.Title != "tessera" || cfg.Script.Timeout != "100ms" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[ui]\nsplitAt = 10\ntitle = \"file\"\n")
	t.Setenv("TESSERA_UI_SPLIT_AT", "30")
	t.Setenv("TESSERA_LOG_LEVEL", "warn")
	t.Setenv("TESSERA_SCRIPT", "/tmp/w.lua")
	t.Setenv("TESSERA_SCRIPT_WATCH", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.SplitAt != 30 {
		t.Errorf("SplitAt = %d, want 30", cfg.UI.SplitAt)
	}
	if cfg.UI.Title != "file" {
		t.Errorf("Title = %q, want file", cfg.UI.Title)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Script.Path != "/tmp/w.lua" || !cfg.Script.Watch {
		t.Errorf("Script = %+v", cfg.Script)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[ui\n")
	_, err := Load(path)

	var perr *loader.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("Load() error = %v, want *loader.ParseError", err)
	}
}

func TestLoadTypeMismatch(t *testing.T) {
	path := writeConfig(t, "[ui]\nsplitAt = \"wide\"\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("[script]\ntimeout = \"250ms\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := cfg.Script.TimeoutDuration(); got != 250*time.Millisecond {
		t.Errorf("TimeoutDuration() = %v, want 250ms", got)
	}
	if cfg.UI.SplitAt != Default().UI.SplitAt {
		t.Errorf("SplitAt = %d, want default", cfg.UI.SplitAt)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"negative split", func(c *Config) { c.UI.SplitAt = -1 }, "ui.splitAt"},
		{"bad color", func(c *Config) { c.UI.HighlightColor = "#zzz" }, "ui.highlightColor"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad timeout", func(c *Config) { c.Script.Timeout = "soon" }, "script.timeout"},
		{"watch without path", func(c *Config) { c.Script.Watch = true }, "script.watch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.UI.SplitAt = -1
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate() = %T, want joined errors", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("got %d errors, want 2", n)
	}
}

func TestTimeoutDurationInvalid(t *testing.T) {
	if d := (ScriptConfig{Timeout: "x"}).TimeoutDuration(); d != 0 {
		t.Errorf("TimeoutDuration() = %v, want 0", d)
	}
}
