// Status command reports record counts per collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show record counts per collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		counts, err := store.CollectionCounts()
		if err != nil {
			return fmt.Errorf("count collections: %w", err)
		}

		if flagJSON {
			return printJSON(counts)
		}

		for _, name := range types.StandardCollectionNames {
			fmt.Printf("%-20s %d\n", name, counts[name])
		}
		return nil
	},
}
