package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bndx/internal/catalog"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:     "list [pattern]...",
	Aliases: []string{"ls"},
	Short:   "List projects matching the specified patterns",
	Long: `List the bnd workspace projects whose names match the given glob patterns,
or every project when no pattern is given.

Examples:
  bndx list
  bndx ls 'com.example.*'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "human", "Output format (human, json)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger := newLogger()

	cat, err := newCatalog(nil, logger)
	if err != nil {
		return err
	}

	var projects []*catalog.Project
	if len(args) == 0 {
		projects = cat.All()
	} else {
		projects, err = cat.Find(args)
		if err != nil {
			return err
		}
	}

	resp := &ListResponseCLI{Projects: []ProjectCLI{}}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, projectCLI(cat, p))
	}

	output, err := FormatResponse(resp, OutputFormat(listFormat))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}

	logger.Debug("list completed", map[string]interface{}{
		"patterns": len(args),
		"projects": len(resp.Projects),
		"duration": time.Since(start).Milliseconds(),
	})
	return nil
}
