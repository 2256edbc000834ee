// Delete command removes a journal entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := repo.DeleteEntry(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted entry:", args[0])
		return nil
	},
}
