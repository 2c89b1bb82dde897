package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/tessera/internal/config/loader"
	"github.com/dshills/tessera/internal/renderer/core"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TESSERA_"

// Config holds all settings.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
	Script  ScriptConfig  `toml:"script"`
}

// UIConfig controls the demo screen.
type UIConfig struct {
	Title           string   `toml:"title"`
	SplitAt         int      `toml:"splitAt"`
	Items           []string `toml:"items"`
	HighlightSymbol string   `toml:"highlightSymbol"`
	HighlightColor  string   `toml:"highlightColor"`
	ShowStatus      bool     `toml:"showStatus"`
}

// LoggingConfig controls the application log.
type LoggingConfig struct {
	Level string `toml:"level"`
	// File is the log destination. Empty discards logs, since the terminal
	// belongs to the UI.
	File string `toml:"file"`
}

// ScriptConfig selects an optional Lua widget.
type ScriptConfig struct {
	Path    string `toml:"path"`
	Watch   bool   `toml:"watch"`
	Timeout string `toml:"timeout"`
}

// TimeoutDuration returns the parsed timeout, or zero if it is unset or
// invalid. Validate reports invalid values.
func (s ScriptConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Title:   "tessera",
			SplitAt: 24,
			Items: []string{
				"Widget",
				"StatefulWidget",
				"Render",
				"RenderWithState",
				"RenderMut",
				"Optional",
				"Text",
			},
			HighlightSymbol: "> ",
			HighlightColor:  "#5f87ff",
			ShowStatus:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Script: ScriptConfig{
			Timeout: "100ms",
		},
	}
}

// Load layers the defaults, the TOML file at path (if any) and the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	defaults, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	env := loader.NewEnvLoader(EnvPrefix)
	env.AddMapping(EnvPrefix+"LOG_LEVEL", "logging.level")
	env.AddMapping(EnvPrefix+"LOG_FILE", "logging.file")
	env.AddMapping(EnvPrefix+"SCRIPT", "script.path")

	merged, err := loader.LoadAll(loader.MapLoader(defaults), loader.NewTOMLLoader(path), env)
	if err != nil {
		return nil, err
	}
	return fromMap(merged)
}

// Parse decodes TOML data layered over the defaults.
func Parse(data []byte) (*Config, error) {
	defaults, err := toMap(Default())
	if err != nil {
		return nil, err
	}
	m, err := loader.ParseTOML("<input>", data)
	if err != nil {
		return nil, err
	}
	return fromMap(loader.DeepMerge(defaults, m))
}

func toMap(cfg *Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return loader.ParseTOML("<defaults>", data)
}

func fromMap(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every setting and returns the failures joined together.
// Each failure is a *ValidationError.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.UI.SplitAt < 0 {
		fail("ui.splitAt", "must not be negative", c.UI.SplitAt)
	}
	if _, err := core.ParseColor(c.UI.HighlightColor); err != nil {
		fail("ui.highlightColor", err.Error(), c.UI.HighlightColor)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		fail("logging.level", "must be one of debug, info, warn, error", c.Logging.Level)
	}
	if c.Script.Timeout != "" {
		if d, err := time.ParseDuration(c.Script.Timeout); err != nil || d < 0 {
			fail("script.timeout", "must be a non-negative duration", c.Script.Timeout)
		}
	}
	if c.Script.Watch && c.Script.Path == "" {
		fail("script.watch", "requires script.path", c.Script.Watch)
	}
	return errors.Join(errs...)
}
