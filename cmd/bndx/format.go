package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"bndx/internal/catalog"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// ProjectCLI describes one project in CLI output
type ProjectCLI struct {
	Name         string `json:"name"`
	Path         string `json:"path,omitempty"`
	SymbolicName string `json:"symbolicName,omitempty"`
	Known        bool   `json:"known"`
}

// projectCLI converts a catalog project for output
func projectCLI(c *catalog.Catalog, p *catalog.Project) ProjectCLI {
	out := ProjectCLI{
		Name:  p.Name,
		Path:  p.AbsPath(),
		Known: !c.Unknown(p),
	}
	if p.SymbolicNameDiffersFromName() {
		out.SymbolicName = p.SymbolicName
	}
	return out
}

// DepsResponseCLI contains an ordered dependency closure for CLI output
type DepsResponseCLI struct {
	Workspace  string       `json:"workspace"`
	Projects   []ProjectCLI `json:"projects"`
	printNames bool
}

// GapsResponseCLI contains the projects missing from Eclipse
type GapsResponseCLI struct {
	Projects []ProjectCLI `json:"projects"`
}

// KnownResponseCLI contains the Eclipse-known project names
type KnownResponseCLI struct {
	Projects []string `json:"projects"`
}

// ListResponseCLI contains matched workspace projects
type ListResponseCLI struct {
	Projects []ProjectCLI `json:"projects"`
}

// RootsResponseCLI contains the projects nothing else depends on
type RootsResponseCLI struct {
	Projects []string `json:"projects"`
}

// UsesResponseCLI contains direct dependents of the queried projects
type UsesResponseCLI struct {
	Projects []ProjectCLI `json:"projects"`
}

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman renders plain name-or-path lines, ready for pasting into
// Eclipse's Import Projects dialog.
func formatHuman(resp interface{}) (string, error) {
	var b strings.Builder
	switch v := resp.(type) {
	case *DepsResponseCLI:
		for _, p := range v.Projects {
			b.WriteString(displayLine(p, v.printNames))
			b.WriteString("\n")
		}
	case *GapsResponseCLI:
		for _, p := range v.Projects {
			b.WriteString(p.Path)
			b.WriteString("\n")
		}
	case *KnownResponseCLI:
		writeNames(&b, v.Projects)
	case *ListResponseCLI:
		for _, p := range v.Projects {
			b.WriteString(p.Name)
			b.WriteString("\n")
		}
	case *RootsResponseCLI:
		writeNames(&b, v.Projects)
	case *UsesResponseCLI:
		for _, p := range v.Projects {
			b.WriteString(p.Name)
			b.WriteString("\n")
		}
	default:
		return formatJSON(resp)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func displayLine(p ProjectCLI, printNames bool) string {
	if printNames {
		return p.Name
	}
	return p.Path
}

func writeNames(b *strings.Builder, names []string) {
	for _, name := range names {
		b.WriteString(name)
		b.WriteString("\n")
	}
}
