// Add command creates a new journal entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var (
	addTitle string
	addDate  string
	addTime  string
	addMood  int
	addTags  []string
)

var addCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Create a new journal entry",
	Long: `Add creates a new journal entry with the given content.

Example:
  lantern add "Long walk by the river today."
  lantern add "Rough day." --mood 2 --tags work,stress
  lantern add "Backdated note" --date 2024-03-10 --time 21:15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		entry, err := repo.AddEntry(&types.JournalEntry{
			Title:   addTitle,
			Content: args[0],
			Date:    addDate,
			Time:    addTime,
			Mood:    addMood,
			Tags:    addTags,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(entry)
		}
		fmt.Println("Created entry:", entry.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "entry title")
	addCmd.Flags().StringVar(&addDate, "date", "", "entry date YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVar(&addTime, "time", "", "entry time HH:MM")
	addCmd.Flags().IntVar(&addMood, "mood", 0, "mood rating")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "comma-separated tags")
}
