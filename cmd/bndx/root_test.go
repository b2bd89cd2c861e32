package main

import (
	"testing"

	"bndx/internal/config"
)

func TestResolveBndWorkspacePrecedence(t *testing.T) {
	cfg := &config.Config{BndWorkspace: "/from/config"}

	bndWorkspaceFlag = ""
	t.Setenv("BNDX_BND_WORKSPACE", "")
	if got := resolveBndWorkspace(cfg); got != "/from/config" {
		t.Errorf("config value should win when flag and env are unset, got %q", got)
	}

	t.Setenv("BNDX_BND_WORKSPACE", "/from/env")
	if got := resolveBndWorkspace(cfg); got != "/from/env" {
		t.Errorf("env should beat config, got %q", got)
	}

	bndWorkspaceFlag = "/from/flag"
	defer func() { bndWorkspaceFlag = "" }()
	if got := resolveBndWorkspace(cfg); got != "/from/flag" {
		t.Errorf("flag should beat env, got %q", got)
	}
}

func TestResolveBndWorkspaceDefault(t *testing.T) {
	bndWorkspaceFlag = ""
	t.Setenv("BNDX_BND_WORKSPACE", "")
	if got := resolveBndWorkspace(nil); got != config.DefaultBndWorkspace {
		t.Errorf("default = %q, want %q", got, config.DefaultBndWorkspace)
	}
}

func TestResolveEclipseWorkspaceDefault(t *testing.T) {
	eclipseWorkspaceFlag = ""
	t.Setenv("BNDX_ECLIPSE_WORKSPACE", "")
	if got := resolveEclipseWorkspace(&config.Config{}); got != config.DefaultEclipseWorkspace {
		t.Errorf("default = %q, want %q", got, config.DefaultEclipseWorkspace)
	}
}
