package main

import (
	"os"
	"sync"

	"bndx/internal/catalog"
	"bndx/internal/config"
	"bndx/internal/eclipse"
	"bndx/internal/logging"
)

var (
	configOnce sync.Once
	sharedCfg  *config.Config

	knownOnce  sync.Once
	knownSet   map[string]bool
	knownNames []string
	knownErr   error
)

// loadConfig returns the shared configuration, falling back to defaults when
// the config file is unreadable.
func loadConfig() *config.Config {
	configOnce.Do(func() {
		cfg, err := config.Load("")
		if err != nil {
			newLogger().Warn("failed to load config, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.DefaultConfig()
		}
		sharedCfg = cfg
	})
	return sharedCfg
}

// newLogger creates a logger from config, with BNDX_LOG_LEVEL overriding the
// configured level.
func newLogger() *logging.Logger {
	format := logging.HumanFormat
	level := logging.InfoLevel
	if sharedCfg != nil {
		if sharedCfg.Logging.Format == "json" {
			format = logging.JSONFormat
		}
		level = logging.ParseLevel(sharedCfg.Logging.Level)
	}
	if env := os.Getenv("BNDX_LOG_LEVEL"); env != "" {
		level = logging.ParseLevel(env)
	}
	return logging.NewLogger(logging.Config{Format: format, Level: level})
}

// getKnownProjects discovers the projects already imported into the Eclipse
// workspace, once per process.
func getKnownProjects() (map[string]bool, []string, error) {
	knownOnce.Do(func() {
		knownSet, knownNames, knownErr = eclipse.KnownProjects(resolveEclipseWorkspace(loadConfig()))
	})
	return knownSet, knownNames, knownErr
}

// newCatalog builds the workspace catalog. known may be nil for commands that
// never classify visibility.
func newCatalog(known map[string]bool, logger *logging.Logger) (*catalog.Catalog, error) {
	return catalog.New(resolveBndWorkspace(loadConfig()), known, logger)
}
