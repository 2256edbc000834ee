// Update command applies a partial update to a journal entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var (
	updateTitle   string
	updateContent string
	updateDate    string
	updateTime    string
	updateMood    int
	updateTags    []string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a journal entry",
	Long: `Update merges the given fields into an existing entry. Only flags
that are set change the record; everything else is left alone.

Example:
  lantern update 0190b5c8 --title "Better title"
  lantern update 0190b5c8 --mood 4 --tags calm,rest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		var patch types.EntryPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &updateContent
		}
		if cmd.Flags().Changed("date") {
			patch.Date = &updateDate
		}
		if cmd.Flags().Changed("time") {
			patch.Time = &updateTime
		}
		if cmd.Flags().Changed("mood") {
			patch.Mood = &updateMood
		}
		if cmd.Flags().Changed("tags") {
			patch.Tags = &updateTags
		}

		entry, err := repo.UpdateEntry(args[0], patch)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(entry)
		}
		fmt.Println("Updated entry:", entry.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateContent, "content", "", "new content")
	updateCmd.Flags().StringVar(&updateDate, "date", "", "new date YYYY-MM-DD")
	updateCmd.Flags().StringVar(&updateTime, "time", "", "new time HH:MM")
	updateCmd.Flags().IntVar(&updateMood, "mood", 0, "new mood rating")
	updateCmd.Flags().StringSliceVar(&updateTags, "tags", nil, "replacement tag list")
}
