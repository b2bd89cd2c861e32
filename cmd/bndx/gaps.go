package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var gapsFormat string

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List projects needed by but missing from Eclipse",
	Long: `List the projects that Eclipse's imported projects transitively require but
that are not themselves imported. Full paths are displayed, for ease of
pasting into Eclipse's Import Projects dialog.`,
	Args: cobra.NoArgs,
	RunE: runGaps,
}

func init() {
	gapsCmd.Flags().StringVar(&gapsFormat, "format", "human", "Output format (human, json)")
	rootCmd.AddCommand(gapsCmd)
}

func runGaps(cmd *cobra.Command, args []string) error {
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

	// Eclipse knows plenty of directories that are not bnd projects, so
	// missing top-level names are tolerated here.
	ordered, err := cat.Required(knownNames, true)
	if err != nil {
		return err
	}

	resp := &GapsResponseCLI{Projects: []ProjectCLI{}}
	for _, p := range ordered {
		if cat.Unknown(p) {
			resp.Projects = append(resp.Projects, projectCLI(cat, p))
		}
	}

	output, err := FormatResponse(resp, OutputFormat(gapsFormat))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}

	logger.Debug("gaps completed", map[string]interface{}{
		"known":    len(knownNames),
		"missing":  len(resp.Projects),
		"duration": time.Since(start).Milliseconds(),
	})
	return nil
}
