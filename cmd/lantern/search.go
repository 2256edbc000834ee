// Search command queries journal entries by title prefix or tag terms.
package main

import (
	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search journal entries",
	Long: `Search matches entries whose title starts with the query, or whose
tags match any whitespace-separated term of it.

Example:
  lantern search "morning"
  lantern search "work stress" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		entries, err := repo.SearchEntries(args[0], searchLimit)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(entries)
		}
		printEntryTable(entries)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results (0 = no limit)")
}
