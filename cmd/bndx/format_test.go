package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatHumanDepsPaths(t *testing.T) {
	resp := &DepsResponseCLI{
		Workspace: "/ws",
		Projects: []ProjectCLI{
			{Name: "core", Path: "/ws/core"},
			{Name: "api", Path: "/ws/api"},
		},
	}
	out, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if out != "/ws/core\n/ws/api" {
		t.Errorf("human output = %q", out)
	}
}

func TestFormatHumanDepsNames(t *testing.T) {
	resp := &DepsResponseCLI{
		Workspace:  "/ws",
		Projects:   []ProjectCLI{{Name: "core", Path: "/ws/core"}},
		printNames: true,
	}
	out, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if out != "core" {
		t.Errorf("human output = %q, want core", out)
	}
}

func TestFormatJSONDeps(t *testing.T) {
	resp := &DepsResponseCLI{
		Workspace: "/ws",
		Projects:  []ProjectCLI{{Name: "api", Path: "/ws/api", SymbolicName: "com.example.api"}},
	}
	out, err := FormatResponse(resp, FormatJSON)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}

	var decoded struct {
		Workspace string `json:"workspace"`
		Projects  []struct {
			Name         string `json:"name"`
			SymbolicName string `json:"symbolicName"`
		} `json:"projects"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Workspace != "/ws" || len(decoded.Projects) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Projects[0].SymbolicName != "com.example.api" {
		t.Errorf("symbolicName = %q", decoded.Projects[0].SymbolicName)
	}
	// the printNames rendering hint must not leak into JSON
	if strings.Contains(out, "printNames") {
		t.Error("printNames should not be serialized")
	}
}

func TestFormatHumanEmptyResponse(t *testing.T) {
	out, err := FormatResponse(&GapsResponseCLI{Projects: []ProjectCLI{}}, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if out != "" {
		t.Errorf("empty response should render as empty string, got %q", out)
	}
}

func TestFormatRejectsUnknownFormat(t *testing.T) {
	if _, err := FormatResponse(&KnownResponseCLI{}, OutputFormat("yaml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}
