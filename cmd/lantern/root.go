// Root command for the lantern CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/internal/paths"
)

// Exit codes. User errors (bad input, missing record) exit 1; system
// errors (storage failure) exit 2.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
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

var rootCmd = &cobra.Command{
	Use:     "lantern",
	Short:   "Lantern is a local-first journal store",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		loadedConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.lantern-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(repairDatesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// resolveDataDir returns the data directory path following the
// precedence chain: --data-dir flag > config.yaml data_dir >
// LANTERN_DATA_DIR env > default $(CWD)/.lantern-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > LANTERN_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
