package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// Variables with the prefix become dotted paths: with prefix "TESSERA_",
// TESSERA_UI_SPLIT_AT sets ui.splitAt. Explicit mappings take precedence.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix. The
// prefix includes its trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: make(map[string]string),
		environ: os.Environ,
	}
}

// AddMapping maps envVar to a dotted config path.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads the environment. Empty values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		SetPath(config, strings.Split(path, "."), parseValue(value))
	}
	return config, nil
}

// envToPath converts TESSERA_UI_SPLIT_AT to ui.splitAt: the first word is
// the section, the rest form a camelCase key.
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	if parts[0] == "" {
		return ""
	}
	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	key := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			key += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + key
}

// parseValue converts an environment string to the most specific type:
// bool words, integers, decimals, JSON arrays and objects, else string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	return s
}
