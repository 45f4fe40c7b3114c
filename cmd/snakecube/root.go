// Root command for the snakecube CLI.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/snakecube/internal/paths"
	"github.com/mesh-intelligence/snakecube/internal/sqlite"
	"github.com/mesh-intelligence/snakecube/pkg/snakecube"
	"github.com/mesh-intelligence/snakecube/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// logger is the CLI-wide logger, configured by PersistentPreRunE.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:     "snakecube",
	Short:   "Snakecube solves snake cube folding puzzles",
	Version: snakecube.Version,
	Long: `Snakecube enumerates every folding of a snake cube chain that fills
an NxNxN cube from a given starting cell and direction, and stores the
results so earlier runs can be listed and inspected.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.snakecube-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log search progress to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(puzzlesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(solutionsCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > SNAKECUBE_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > SNAKECUBE_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// withStore attaches the SQLite store, runs fn, and detaches.
func withStore(fn func(types.Store) error) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return err
	}
	defer backend.Detach()

	return fn(backend)
}
