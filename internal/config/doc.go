// Package config loads tessera's settings.
//
// Settings are layered with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← TESSERA_UI_SPLIT_AT=30
//	├─────────────────────────────┤
//	│  2. Config File (TOML)      │  ← -config tessera.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller after loading.
//
// # Basic Usage
//
//	cfg, err := config.Load("tessera.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
