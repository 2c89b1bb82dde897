// Package loader reads configuration sources into plain maps.
//
// Each source (a TOML file, the environment) produces a
// map[string]any. Maps are layered with DeepMerge, later sources winning.
package loader

import "os"

// Loader is the interface for configuration sources.
type Loader interface {
	// Load reads the source and returns a map. It returns nil, nil when the
	// source does not exist.
	Load() (map[string]any, error)
}

// FileSystem abstracts file access so tests can use an in-memory tree.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadAll loads every source in order and merges the results. Later
// loaders override earlier ones.
func LoadAll(loaders ...Loader) (map[string]any, error) {
	merged := make(map[string]any)
	for _, l := range loaders {
		m, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = DeepMerge(merged, m)
	}
	return merged, nil
}

// MapLoader is a fixed map, used for built-in defaults.
type MapLoader map[string]any

// Load returns a copy of the map.
func (m MapLoader) Load() (map[string]any, error) {
	return Clone(m), nil
}
