// Package catalog builds the dependency graph of a bnd workspace: one
// Project per subdirectory carrying a bnd.bnd descriptor, indexed by
// directory name and by symbolic name, with lazy, memoized, cycle-tolerant
// resolution of transitive dependencies ("cooking") and a deterministic
// dependency-order traversal over the cooked graph.
//
// The catalog is built fresh from disk on every run and is single-threaded;
// the two indexes only grow as queries are serviced.
package catalog

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"bndx/internal/errors"
	"bndx/internal/logging"
)

// Catalog owns every Project record for one bnd workspace.
type Catalog struct {
	workspaceRoot string
	known         map[string]bool
	showAll       bool

	// raw indexes every identity string (directory name, and symbolic name
	// when different) to its shared Project record; canonical memoizes
	// cooking per distinct query string.
	raw       map[string]*Project
	canonical map[string]*Project

	logger *logging.Logger
}

// New scans the immediate children of workspaceRoot for bnd.bnd descriptors
// and builds the raw project index. known is the set of project names already
// present in the companion workspace; it only affects visibility
// classification, never the graph.
func New(workspaceRoot string, known map[string]bool, logger *logging.Logger) (*Catalog, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{
			Format: logging.HumanFormat,
			Level:  logging.ErrorLevel,
			Output: io.Discard,
		})
	}

	info, err := os.Stat(workspaceRoot)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.WorkspaceNotFound,
			"could not locate bnd workspace: %s", workspaceRoot)
	}

	c := &Catalog{
		workspaceRoot: workspaceRoot,
		known:         known,
		raw:           make(map[string]*Project),
		canonical:     make(map[string]*Project),
		logger:        logger,
	}

	entries, err := os.ReadDir(workspaceRoot)
	if err != nil {
		return nil, errors.Wrap(errors.WorkspaceNotFound,
			"could not inspect bnd workspace: "+workspaceRoot, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(workspaceRoot, e.Name(), descriptorFile)); err != nil {
			continue
		}
		p, err := c.newProject(e.Name())
		if err != nil {
			return nil, err
		}
		c.raw[p.Name] = p
		if p.SymbolicNameDiffersFromName() {
			c.raw[p.SymbolicName] = p
		}
	}

	logger.Debug("scanned bnd workspace", map[string]interface{}{
		"workspace": workspaceRoot,
		"projects":  len(c.raw),
	})
	return c, nil
}

// ShowAll switches visibility classification to include projects that are
// already known to the companion workspace.
func (c *Catalog) ShowAll(show bool) {
	c.showAll = show
}

// Unknown reports whether p is absent from the known-project set.
func (c *Catalog) Unknown(p *Project) bool {
	return !c.known[p.Name]
}

// Visible reports whether p should appear in filtered output.
func (c *Catalog) Visible(p *Project) bool {
	return c.showAll || c.Unknown(p)
}

// getRaw returns the indexed project for name, creating (and indexing) a
// fresh record on first reference. References to names outside the scanned
// workspace resolve to placeholders rather than failing.
func (c *Catalog) getRaw(name string) (*Project, error) {
	if p, ok := c.raw[name]; ok {
		return p, nil
	}
	p, err := c.newProject(name)
	if err != nil {
		return nil, err
	}
	c.raw[name] = p
	return p, nil
}

// GetCanonical returns the fully cooked project for name, memoized per
// distinct query string.
func (c *Catalog) GetCanonical(name string) (*Project, error) {
	if p, ok := c.canonical[name]; ok {
		return p, nil
	}
	p, err := c.getRaw(name)
	if err != nil {
		return nil, err
	}
	if err := c.cook(p); err != nil {
		return nil, err
	}
	c.canonical[name] = p
	return p, nil
}

// cook resolves p's build and test references into an ordered,
// duplicate-free list of cooked projects. The cooking state is set before
// any recursion so that a reference cycle terminates: the second visit finds
// a non-raw state and returns immediately. References that resolve to
// placeholders contribute no edge.
func (c *Catalog) cook(p *Project) error {
	if p.state != stateRaw {
		return nil
	}
	p.state = stateCooking
	p.deps = make([]*Project, 0, len(p.BuildRefs)+len(p.TestRefs))

	inDeps := make(map[*Project]bool)
	for _, refs := range [][]string{p.BuildRefs, p.TestRefs} {
		for _, ref := range refs {
			dep, err := c.getRaw(ref)
			if err != nil {
				return err
			}
			if !dep.Real {
				c.logger.Debug("dropping reference to non-project", map[string]interface{}{
					"project": p.Name,
					"ref":     ref,
				})
				continue
			}
			if err := c.cook(dep); err != nil {
				return err
			}
			if !inDeps[dep] {
				inDeps[dep] = true
				p.deps = append(p.deps, dep)
			}
		}
	}
	p.state = stateCooked
	return nil
}

// dfs appends p's dependency closure to out in post-order: every dependency
// strictly before its dependents, each project exactly once at its first
// completion. The entered set doubles as the cycle guard.
func dfs(p *Project, entered map[*Project]bool, out *[]*Project) {
	if entered[p] {
		return
	}
	entered[p] = true
	for _, dep := range p.deps {
		dfs(dep, entered, out)
	}
	*out = append(*out, p)
}

// Required returns the merged, dependency-ordered closure of the named
// projects. A queried name with no real descriptor is an error unless
// ignoreMissing is set, in which case it is skipped.
func (c *Catalog) Required(names []string, ignoreMissing bool) ([]*Project, error) {
	entered := make(map[*Project]bool)
	out := []*Project{}
	for _, name := range names {
		p, err := c.GetCanonical(name)
		if err != nil {
			return nil, err
		}
		if !p.Real {
			if ignoreMissing {
				c.logger.Debug("skipping unknown project", map[string]interface{}{"name": name})
				continue
			}
			return nil, errors.Newf(errors.ProjectNotFound,
				"project directory does not exist: %s", name)
		}
		dfs(p, entered, &out)
	}
	return out, nil
}

// Dependents returns every real project that directly depends on any of the
// named projects, sorted by name. Either identity key reaches a target.
func (c *Catalog) Dependents(names []string) ([]*Project, error) {
	targets := make(map[*Project]bool)
	for _, name := range names {
		p, err := c.GetCanonical(name)
		if err != nil {
			return nil, err
		}
		targets[p] = true
	}

	var out []*Project
	for _, name := range c.realNames() {
		p, err := c.GetCanonical(name)
		if err != nil {
			return nil, err
		}
		for _, dep := range p.deps {
			if targets[dep] {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// All returns every real project in the workspace, sorted by name.
func (c *Catalog) All() []*Project {
	var out []*Project
	for _, name := range c.realNames() {
		out = append(out, c.raw[name])
	}
	return out
}

// Find returns the real projects whose directory name matches any of the
// glob patterns, sorted by name.
func (c *Catalog) Find(patterns []string) ([]*Project, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrap(errors.BadPattern, "bad pattern: "+pattern, err)
		}
		globs = append(globs, g)
	}

	var out []*Project
	for _, name := range c.realNames() {
		for _, g := range globs {
			if g.Match(name) {
				out = append(out, c.raw[name])
				break
			}
		}
	}
	return out, nil
}

// realNames returns the sorted primary names of all real projects indexed so
// far. Alias entries (symbolic names) are excluded so each project appears once.
func (c *Catalog) realNames() []string {
	var names []string
	for name, p := range c.raw {
		if p.Real && name == p.Name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
