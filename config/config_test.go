package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Decode.MaxOperations != 0 {
		t.Errorf("Decode.MaxOperations = %d, want 0 (unlimited)", cfg.Decode.MaxOperations)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.NumberFormat != "hex" {
		t.Errorf("NumberFormat = %q, want hex", cfg.Output.NumberFormat)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thumb2dis.toml")
	contents := `
[output]
format = "json"

[decode]
stop_on_error = true
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if !cfg.Decode.StopOnError {
		t.Error("Decode.StopOnError should be true")
	}
	// Fields not present in the file keep their defaults.
	if cfg.Output.NumberFormat != "hex" {
		t.Errorf("Output.NumberFormat = %q, want hex (unset field keeps default)", cfg.Output.NumberFormat)
	}
}
