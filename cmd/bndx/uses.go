package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var usesFormat string

var usesCmd = &cobra.Command{
	Use:   "uses <project>...",
	Short: "List projects that depend directly on the specified projects",
	Long: `List every workspace project whose -buildpath or -testpath references one of
the specified projects. Projects are listed by name regardless of inclusion
in the Eclipse workspace.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUses,
}

func init() {
	usesCmd.Flags().StringVar(&usesFormat, "format", "human", "Output format (human, json)")
	rootCmd.AddCommand(usesCmd)
}

func runUses(cmd *cobra.Command, args []string) error {
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

	dependents, err := cat.Dependents(args)
	if err != nil {
		return err
	}

	resp := &UsesResponseCLI{Projects: []ProjectCLI{}}
	for _, p := range dependents {
		resp.Projects = append(resp.Projects, projectCLI(cat, p))
	}

	output, err := FormatResponse(resp, OutputFormat(usesFormat))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}

	logger.Debug("uses completed", map[string]interface{}{
		"queried":    len(args),
		"dependents": len(resp.Projects),
		"duration":   time.Since(start).Milliseconds(),
	})
	return nil
}
