package config

import (
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ingest.Format != "raw" {
		t.Errorf("default format = %q, want raw", cfg.Ingest.Format)
	}
	if cfg.Ingest.Encoding != "uint8" {
		t.Errorf("default encoding = %q, want uint8", cfg.Ingest.Encoding)
	}
	if cfg.Ingest.ByteOrder != "big" {
		t.Errorf("default byte order = %q, want big", cfg.Ingest.ByteOrder)
	}
	if cfg.Container.Scheme != "current" {
		t.Errorf("default scheme = %q, want current", cfg.Container.Scheme)
	}
}

// TestLoadConfigMissingFile returns the defaults when no file exists
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ingest.Format != "raw" {
		t.Errorf("expected defaults, got format %q", cfg.Ingest.Format)
	}
}

// TestSaveLoadRoundTrip persists a modified configuration and reads it back
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volgrid.yaml")

	cfg := DefaultConfig()
	cfg.Ingest.Format = "ascii"
	cfg.Ingest.Encoding = "float32"
	cfg.Ingest.ByteOrder = "little"
	cfg.Container.Scheme = "legacy"
	cfg.Output.Verbose = false

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Ingest.Format != "ascii" || loaded.Ingest.Encoding != "float32" ||
		loaded.Ingest.ByteOrder != "little" {
		t.Errorf("ingest settings did not round trip: %+v", loaded.Ingest)
	}
	if loaded.Container.Scheme != "legacy" {
		t.Errorf("scheme = %q, want legacy", loaded.Container.Scheme)
	}
	if loaded.Output.Verbose {
		t.Error("verbose flag did not round trip")
	}
}
