package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var rootsFormat string

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "Show known projects that no other project requires",
	Long: `Build the dependency subgraph over the Eclipse-known projects and everything
they require, and list the projects with no dependents: the roots of the
known set.`,
	Args: cobra.NoArgs,
	RunE: runRoots,
}

func init() {
	rootsCmd.Flags().StringVar(&rootsFormat, "format", "human", "Output format (human, json)")
	rootCmd.AddCommand(rootsCmd)
}

func runRoots(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger := newLogger()

	known, knownNames, err := getKnownProjects()
	if err != nil {
		return err
	}
	cat, err := newCatalog(known, logger)
	if err != nil {
		return err
	}

	g, err := cat.Subgraph(knownNames)
	if err != nil {
		return err
	}

	resp := &RootsResponseCLI{Projects: []string{}}
	for _, p := range g.Roots() {
		resp.Projects = append(resp.Projects, p.Name)
	}

	output, err := FormatResponse(resp, OutputFormat(rootsFormat))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}

	logger.Debug("roots completed", map[string]interface{}{
		"known":    len(knownNames),
		"roots":    len(resp.Projects),
		"duration": time.Since(start).Milliseconds(),
	})
	return nil
}
