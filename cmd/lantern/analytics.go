// Analytics command computes derived statistics over the journal.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var analyticsWindow int

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show journal statistics over a trailing window",
	Long: `Analytics derives statistics from entries and moods created within
the trailing window: average mood, mood trend, writing streak, top tags,
and total word count.

Example:
  lantern analytics
  lantern analytics --window 7
  lantern analytics --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		summary, err := repo.Analytics(analyticsWindow)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(summary)
		}

		fmt.Printf("Window:         %d days\n", summary.WindowDays)
		fmt.Printf("Entries:        %d\n", summary.EntryCount)
		fmt.Printf("Mood samples:   %d\n", summary.MoodCount)
		fmt.Printf("Average mood:   %.2f\n", summary.AverageMood)
		fmt.Printf("Mood trend:     %+.2f\n", summary.MoodTrend)
		fmt.Printf("Writing streak: %d day(s)\n", summary.WritingStreak)
		fmt.Printf("Word count:     %d\n", summary.WordCount)
		if len(summary.TopTags) > 0 {
			parts := make([]string, len(summary.TopTags))
			for i, tc := range summary.TopTags {
				parts[i] = fmt.Sprintf("%s(%d)", tc.Tag, tc.Count)
			}
			fmt.Printf("Top tags:       %s\n", strings.Join(parts, " "))
		}
		return nil
	},
}

func init() {
	analyticsCmd.Flags().IntVar(&analyticsWindow, "window", 30, "trailing window in days")
}
