// Repair-dates command realigns entry timestamps with their date fields.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repairDatesCmd = &cobra.Command{
	Use:   "repair-dates",
	Short: "Realign entry timestamps with their date and time fields",
	Long: `Repair-dates rewrites each entry's createdAt to match the entry's
own date and time fields. Useful after imports that stamped entries
with the import moment instead of when they were written.

Entries whose date cannot be parsed are skipped and counted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		report, err := repo.MigrateEntryDates()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(report)
		}
		fmt.Printf("Updated %d entry(s), %d error(s)\n", report.Updated, report.Errors)
		return nil
	},
}
