// Package eclipse reads the companion Eclipse workspace: which projects it
// already contains, and the peculiar ordering its import dialog uses.
package eclipse

import (
	"os"
	"path/filepath"
	"sort"

	"bndx/internal/errors"
)

// dotProjectsRelPath is where Eclipse records one directory per imported project.
const dotProjectsRelPath = ".metadata/.plugins/org.eclipse.core.resources/.projects"

// KnownProjects returns the names of all projects already imported into the
// Eclipse workspace, as a membership set plus a sorted name list. The catalog
// treats these as an opaque name set.
func KnownProjects(eclipseWorkspace string) (map[string]bool, []string, error) {
	info, err := os.Stat(eclipseWorkspace)
	if err != nil || !info.IsDir() {
		return nil, nil, errors.Newf(errors.EclipseWorkspaceNotFound,
			"could not locate eclipse workspace: %s", eclipseWorkspace)
	}

	dotProjects := filepath.Join(eclipseWorkspace, dotProjectsRelPath)
	entries, err := os.ReadDir(dotProjects)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ProjectsMetadataUnreadable,
			"could not enumerate eclipse projects in "+dotProjects, err)
	}

	known := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		known[e.Name()] = true
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return known, names, nil
}
