package catalog

import "sort"

// Subgraph is the induced dependency subgraph over a set of projects plus
// everything they transitively require, with per-node in-degree.
type Subgraph struct {
	nodes    []*Project
	inSet    map[*Project]bool
	inDegree map[*Project]int
}

// Subgraph cooks the named projects (names with no real descriptor are
// skipped) and returns the induced subgraph over them and their transitive
// dependencies.
func (c *Catalog) Subgraph(names []string) (*Subgraph, error) {
	entered := make(map[*Project]bool)
	nodes := []*Project{}
	for _, name := range names {
		p, err := c.GetCanonical(name)
		if err != nil {
			return nil, err
		}
		if !p.Real {
			continue
		}
		dfs(p, entered, &nodes)
	}

	g := &Subgraph{
		nodes:    nodes,
		inSet:    entered,
		inDegree: make(map[*Project]int, len(nodes)),
	}
	for _, p := range nodes {
		for _, dep := range p.deps {
			if g.inSet[dep] {
				g.inDegree[dep]++
			}
		}
	}
	return g, nil
}

// Projects returns the subgraph's nodes in dependency order.
func (g *Subgraph) Projects() []*Project {
	return g.nodes
}

// InDegree returns how many projects in the subgraph directly depend on p.
func (g *Subgraph) InDegree(p *Project) int {
	return g.inDegree[p]
}

// Roots returns the projects no other project in the subgraph depends on,
// sorted by name.
func (g *Subgraph) Roots() []*Project {
	var roots []*Project
	for _, p := range g.nodes {
		if g.inDegree[p] == 0 {
			roots = append(roots, p)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Name < roots[j].Name })
	return roots
}
