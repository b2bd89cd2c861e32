package main

import (
	"os"

	"github.com/spf13/cobra"

	"bndx/internal/config"
)

const version = "0.8.0"

var (
	// bndWorkspaceFlag is the CLI -b/--bnd-workspace flag value
	bndWorkspaceFlag string
	// eclipseWorkspaceFlag is the CLI -e/--eclipse-workspace flag value
	eclipseWorkspaceFlag string
)

var rootCmd = &cobra.Command{
	Use:   "bndx",
	Short: "bndx - bnd workspace dependency explorer",
	Long: `bndx explores relationships between projects in a bnd workspace and their
corresponding projects in an Eclipse workspace: transitive dependencies in
build order, reverse dependencies, and the projects Eclipse is still missing.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("bndx version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&bndWorkspaceFlag, "bnd-workspace", "b", "",
		"Location of the bnd workspace (default \".\")")
	rootCmd.PersistentFlags().StringVarP(&eclipseWorkspaceFlag, "eclipse-workspace", "e", "",
		"Location of the eclipse workspace (default \"../../eclipse\")")
}

// resolveBndWorkspace determines the effective bnd workspace location.
// Precedence: CLI flag > BNDX_BND_WORKSPACE env var > config file > "."
func resolveBndWorkspace(cfg *config.Config) string {
	if bndWorkspaceFlag != "" {
		return bndWorkspaceFlag
	}
	if env := os.Getenv("BNDX_BND_WORKSPACE"); env != "" {
		return env
	}
	if cfg != nil && cfg.BndWorkspace != "" {
		return cfg.BndWorkspace
	}
	return config.DefaultBndWorkspace
}

// resolveEclipseWorkspace determines the effective eclipse workspace location.
// Precedence: CLI flag > BNDX_ECLIPSE_WORKSPACE env var > config file > "../../eclipse"
func resolveEclipseWorkspace(cfg *config.Config) string {
	if eclipseWorkspaceFlag != "" {
		return eclipseWorkspaceFlag
	}
	if env := os.Getenv("BNDX_ECLIPSE_WORKSPACE"); env != "" {
		return env
	}
	if cfg != nil && cfg.EclipseWorkspace != "" {
		return cfg.EclipseWorkspace
	}
	return config.DefaultEclipseWorkspace
}
