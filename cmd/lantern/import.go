// Import command loads a JSON snapshot into the journal.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var importForce bool

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a JSON snapshot",
	Long: `Import loads a snapshot produced by export. Entries whose checksum
matches a stored backup are skipped as likely duplicates unless --force
is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var snap types.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("parse snapshot: %w", err)
		}

		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		report, err := repo.Import(&snap, importForce)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(report)
		}
		fmt.Printf("Imported %d record(s), skipped %d duplicate(s), %d error(s)\n",
			report.Imported, report.Duplicates, report.Errors)
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importForce, "force", false, "import likely duplicates anyway")
}
