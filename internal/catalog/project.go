package catalog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/magiconair/properties"

	"bndx/internal/errors"
)

const (
	descriptorFile = "bnd.bnd"
	overridesFile  = "bnd.overrides"

	symbolicNameKey = "Bundle-SymbolicName"
	buildPathKey    = "-buildpath"
	testPathKey     = "-testpath"
)

// cookState tracks dependency resolution progress for one project.
// The cooking state is what makes mutually referencing projects terminate:
// a revisit during cooking is a no-op.
type cookState int

const (
	stateRaw cookState = iota
	stateCooking
	stateCooked
)

// Project is one module of the bnd workspace: a subdirectory holding a
// bnd.bnd descriptor. A referenced name with no such descriptor still gets a
// Project record (a placeholder) so that lookups never fail; placeholders
// contribute no dependency edges.
type Project struct {
	// Name is the directory name, the primary identity key.
	Name string
	// Root is the project directory under the workspace, empty when the
	// name could not be resolved to a path segment.
	Root string
	// SymbolicName is the Bundle-SymbolicName declared in the descriptor.
	// It defaults to Name when absent, and is the secondary identity key
	// when it differs.
	SymbolicName string
	// Real is true iff a bnd.bnd descriptor exists at Root.
	Real bool
	// BuildRefs and TestRefs are the raw -buildpath / -testpath references
	// with version and attribute suffixes already stripped.
	BuildRefs []string
	TestRefs  []string

	deps  []*Project
	state cookState
}

var refSeparator = regexp.MustCompile(`,\s*`)

// newProject builds the descriptor record for name. Placeholders come back
// pre-cooked with an empty dependency list; only an unreadable descriptor
// file is an error.
func (c *Catalog) newProject(name string) (*Project, error) {
	p := &Project{Name: name, SymbolicName: name}

	root := c.resolveRoot(name)
	if root == "" {
		p.precook()
		return p, nil
	}
	p.Root = root

	bndPath := filepath.Join(root, descriptorFile)
	if _, err := os.Stat(bndPath); err != nil {
		p.precook()
		return p, nil
	}
	p.Real = true

	files := []string{bndPath}
	if _, err := os.Stat(filepath.Join(root, overridesFile)); err == nil {
		files = append(files, filepath.Join(root, overridesFile))
	}
	// DisableExpansion must be set on the loader, not after the fact: bnd
	// macros like ${p} have to pass through untouched, including ones the
	// expander would reject as circular.
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadAll(files)
	if err != nil {
		return nil, errors.Wrap(errors.DescriptorUnreadable,
			"could not read descriptor for "+name, err)
	}

	if sn := strings.TrimSpace(props.GetString(symbolicNameKey, "")); sn != "" {
		p.SymbolicName = sn
	}
	p.BuildRefs = splitRefs(props.GetString(buildPathKey, ""))
	p.TestRefs = splitRefs(props.GetString(testPathKey, ""))
	return p, nil
}

// resolveRoot maps a project name to its directory, or "" when the name is
// not usable as a single path segment.
func (c *Catalog) resolveRoot(name string) string {
	if name == "" || name == "." || name == ".." {
		return ""
	}
	if strings.ContainsAny(name, "/\\") || strings.ContainsRune(name, 0) {
		return ""
	}
	return filepath.Join(c.workspaceRoot, name)
}

// splitRefs parses a -buildpath / -testpath value: comma-plus-optional-
// whitespace separated tokens, each truncated at the first semicolon so that
// version constraints and attributes are discarded.
func splitRefs(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var refs []string
	for _, tok := range refSeparator.Split(value, -1) {
		if i := strings.IndexByte(tok, ';'); i >= 0 {
			tok = tok[:i]
		}
		tok = strings.TrimSpace(tok)
		if tok != "" {
			refs = append(refs, tok)
		}
	}
	return refs
}

// precook marks a placeholder as already resolved: nothing to cook.
func (p *Project) precook() {
	p.deps = []*Project{}
	p.state = stateCooked
}

// SymbolicNameDiffersFromName reports whether this project should also be
// indexed under its symbolic name.
func (p *Project) SymbolicNameDiffersFromName() bool {
	return p.SymbolicName != "" && p.SymbolicName != p.Name
}

// Dependencies returns the cooked dependency list. It is nil until the
// catalog has cooked this project, and the same slice on every call after.
func (p *Project) Dependencies() []*Project {
	return p.deps
}

// AbsPath returns the project directory as an absolute path with symlinks
// resolved where possible, for pasting into Eclipse's import dialog.
func (p *Project) AbsPath() string {
	if p.Root == "" {
		return ""
	}
	abs, err := filepath.Abs(p.Root)
	if err != nil {
		return p.Root
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}
