package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var knownFormat string

var knownCmd = &cobra.Command{
	Use:   "known",
	Short: "Show projects already known to Eclipse",
	Args:  cobra.NoArgs,
	RunE:  runKnown,
}

func init() {
	knownCmd.Flags().StringVar(&knownFormat, "format", "human", "Output format (human, json)")
	rootCmd.AddCommand(knownCmd)
}

func runKnown(cmd *cobra.Command, args []string) error {
	_, names, err := getKnownProjects()
	if err != nil {
		return err
	}

	output, err := FormatResponse(&KnownResponseCLI{Projects: names}, OutputFormat(knownFormat))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}
	return nil
}
