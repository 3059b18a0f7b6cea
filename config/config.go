// Package config loads thumb2dis's on-disk configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the settings the CLI reads before decoding a program.
//
// Grounded on lookbusy1344-arm_emulator's config/config.go: a single
// struct of nested, toml-tagged sections with a DefaultConfig
// constructor and a platform-specific config path helper, narrowed here
// to the settings a pure disassembler actually has (no execution,
// debugger, or statistics sections, since this tool never runs a
// program).
type Config struct {
	// Output controls how decoded operations are rendered.
	Output struct {
		Format        string `toml:"format"` // "text" or "json"
		NumberFormat  string `toml:"number_format"` // "hex" or "dec"
		ColorOutput   bool   `toml:"color_output"`
		ShowAddresses bool   `toml:"show_addresses"`
	} `toml:"output"`

	// Decode controls the driver's behaviour on malformed input.
	Decode struct {
		StopOnError   bool `toml:"stop_on_error"`
		MaxOperations int  `toml:"max_operations"`
	} `toml:"decode"`

	// Log controls diagnostic logging, independent of decoded output.
	Log struct {
		Level string `toml:"level"` // "debug", "info", "warn", "error"
		File  string `toml:"file"`
	} `toml:"log"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}

	cfg.Output.Format = "text"
	cfg.Output.NumberFormat = "hex"
	cfg.Output.ColorOutput = true
	cfg.Output.ShowAddresses = true

	cfg.Decode.StopOnError = false
	cfg.Decode.MaxOperations = 0 // 0 means unlimited

	cfg.Log.Level = "warn"
	cfg.Log.File = ""

	return cfg
}

// Load reads a TOML config file at path, falling back to Default for any
// field the file does not set.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the platform-specific config file location.
//
// Grounded on lookbusy1344-arm_emulator's config.GetConfigPath, narrowed
// to this tool's own app name.
func DefaultPath() string {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "thumb2dis")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "thumb2dis.toml"
		}
		dir = filepath.Join(home, ".config", "thumb2dis")
	default:
		return "thumb2dis.toml"
	}

	return filepath.Join(dir, "thumb2dis.toml")
}
