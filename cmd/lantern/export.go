// Export command dumps every collection to a JSON snapshot file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.json>",
	Short: "Export the whole journal to a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		snap, err := repo.Export()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}

		fmt.Printf("Exported %d entry(s) to %s\n", snap.Metadata.TotalEntries, args[0])
		return nil
	},
}
