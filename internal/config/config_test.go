package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BndWorkspace != DefaultBndWorkspace {
		t.Errorf("BndWorkspace = %q, want %q", cfg.BndWorkspace, DefaultBndWorkspace)
	}
	if cfg.EclipseWorkspace != DefaultEclipseWorkspace {
		t.Errorf("EclipseWorkspace = %q, want %q", cfg.EclipseWorkspace, DefaultEclipseWorkspace)
	}
	if cfg.Logging.Format != "human" || cfg.Logging.Level != "info" {
		t.Errorf("Logging = %+v, want human/info", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "bndWorkspace": "/work/ol/dev",
  "logging": {"level": "debug"}
}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BndWorkspace != "/work/ol/dev" {
		t.Errorf("BndWorkspace = %q", cfg.BndWorkspace)
	}
	// Unset keys keep their defaults
	if cfg.EclipseWorkspace != DefaultEclipseWorkspace {
		t.Errorf("EclipseWorkspace = %q, want default", cfg.EclipseWorkspace)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "human" {
		t.Errorf("Logging.Format = %q, want human", cfg.Logging.Format)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config file")
	}
}
