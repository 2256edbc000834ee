// Show command displays a journal entry with full details.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display a journal entry with full details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		entry, err := repo.GetEntry(args[0])
		if err != nil {
			return err
		}

		insights, err := repo.InsightsForEntry(entry.ID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"entry":    entry,
				"insights": insights,
			})
		}

		fmt.Printf("ID:      %s\n", entry.ID)
		if entry.Title != "" {
			fmt.Printf("Title:   %s\n", entry.Title)
		}
		fmt.Printf("Date:    %s", entry.Date)
		if entry.Time != "" {
			fmt.Printf(" %s", entry.Time)
		}
		fmt.Println()
		if entry.Mood != 0 {
			fmt.Printf("Mood:    %d\n", entry.Mood)
		}
		if len(entry.Tags) > 0 {
			fmt.Printf("Tags:    %s\n", strings.Join(entry.Tags, ", "))
		}
		if entry.MoonPhase != "" {
			fmt.Printf("Moon:    %s\n", entry.MoonPhase)
		}
		if entry.Location != nil && entry.Location.City != "" {
			fmt.Printf("Place:   %s, %s\n", entry.Location.City, entry.Location.Country)
		}
		fmt.Printf("Created: %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated: %s\n", entry.UpdatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("\n%s\n", entry.Content)

		if len(insights) > 0 {
			fmt.Println("\nInsights:")
			for _, i := range insights {
				fmt.Printf("  [%s] %s (intensity %.1f)\n",
					i.CreatedAt.Format("2006-01-02"), i.PrimaryEmotion, i.Intensity)
			}
		}
		return nil
	},
}
