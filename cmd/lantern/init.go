// Init command for the lantern CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the journal store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := ensureConfigDir(configDir); err != nil {
			return err
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return err
		}

		// Opening the store creates the data directory and applies
		// pending schema migrations.
		_, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Println("Lantern initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
