// List command queries journal entries.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var (
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	Long: `List fetches journal entries and displays them newest first.

Example:
  lantern list
  lantern list --limit 10
  lantern list --limit 10 --offset 10
  lantern list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		entries, err := repo.ListEntries(listLimit, listOffset)
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
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results (0 = no limit)")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of results to skip")
}

// printEntryTable prints entries in a human-readable table format.
func printEntryTable(entries []types.JournalEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDATE\tTITLE\tMOOD\tTAGS")
	fmt.Fprintln(w, "--\t----\t-----\t----\t----")
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = truncate(e.Content, 40)
		} else {
			title = truncate(title, 40)
		}
		mood := ""
		if e.Mood != 0 {
			mood = fmt.Sprintf("%d", e.Mood)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ID), e.Date, title, mood, strings.Join(e.Tags, ","))
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d entry(s)\n", len(entries))
}
