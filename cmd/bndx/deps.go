package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"bndx/internal/eclipse"
)

var (
	depsFormat          string
	depsShowAll         bool
	depsPrintNames      bool
	depsEclipseOrdering bool
)

var depsCmd = &cobra.Command{
	Use:   "deps <project>...",
	Short: "List projects and their transitive dependencies in dependency order",
	Long: `List the specified projects and everything they transitively require, with
every dependency before its dependents. Full paths are displayed by default,
for ease of pasting into Eclipse's Import Projects dialog.

Examples:
  bndx deps com.example.api
  bndx deps -n com.example.api com.example.cli
  bndx deps --show-all --eclipse-ordering com.example.api`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().StringVar(&depsFormat, "format", "human", "Output format (human, json)")
	depsCmd.Flags().BoolVarP(&depsShowAll, "show-all", "a", false,
		"Include projects already in the Eclipse workspace")
	depsCmd.Flags().BoolVarP(&depsPrintNames, "print-names", "n", false,
		"Print names of projects rather than paths")
	depsCmd.Flags().BoolVar(&depsEclipseOrdering, "eclipse-ordering", false,
		"Use the unusual ordering of Eclipse's import-existing-projects dialog")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger := newLogger()

	known, _, err := getKnownProjects()
	if err != nil {
		return err
	}
	cat, err := newCatalog(known, logger)
	if err != nil {
		return err
	}
	cat.ShowAll(depsShowAll)

	ordered, err := cat.Required(args, false)
	if err != nil {
		return err
	}

	resp := &DepsResponseCLI{
		Workspace:  resolveBndWorkspace(loadConfig()),
		Projects:   []ProjectCLI{},
		printNames: depsPrintNames,
	}
	for _, p := range ordered {
		if !cat.Visible(p) {
			continue
		}
		resp.Projects = append(resp.Projects, projectCLI(cat, p))
	}
	if depsEclipseOrdering {
		sort.SliceStable(resp.Projects, func(i, j int) bool {
			return eclipse.ImportOrderLess(
				displayLine(resp.Projects[i], depsPrintNames),
				displayLine(resp.Projects[j], depsPrintNames))
		})
	}

	output, err := FormatResponse(resp, OutputFormat(depsFormat))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}

	logger.Debug("deps completed", map[string]interface{}{
		"queried":  len(args),
		"projects": len(resp.Projects),
		"duration": time.Since(start).Milliseconds(),
	})
	return nil
}
