// Mood commands manage mood log entries.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var (
	moodAddNotes   string
	moodAddDate    string
	moodAddFactors []string
	moodListLimit  int
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Manage mood log entries",
}

var moodAddCmd = &cobra.Command{
	Use:   "add <rating>",
	Short: "Log a mood rating from 1 (low) to 5 (high)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rating int
		if _, err := fmt.Sscanf(args[0], "%d", &rating); err != nil {
			return fmt.Errorf("invalid rating %q: %w", args[0], err)
		}

		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		mood, err := repo.AddMood(&types.MoodEntry{
			Mood:    rating,
			Date:    moodAddDate,
			Notes:   moodAddNotes,
			Factors: moodAddFactors,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(mood)
		}
		fmt.Println("Logged mood:", mood.ID)
		return nil
	},
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		moods, err := repo.ListMoods(moodListLimit, 0)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(moods)
		}
		if len(moods) == 0 {
			fmt.Println("No mood entries found.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tMOOD\tNOTES")
		fmt.Fprintln(w, "--\t----\t----\t-----")
		for _, m := range moods {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				shortID(m.ID), m.Date, m.Mood, truncate(m.Notes, 40))
		}
		w.Flush()
		for _, line := range strings.Split(sb.String(), "\n") {
			fmt.Println(strings.TrimRight(line, " "))
		}
		return nil
	},
}

var moodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a mood entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := repo.DeleteMood(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted mood:", args[0])
		return nil
	},
}

func init() {
	moodAddCmd.Flags().StringVar(&moodAddDate, "date", "", "mood date YYYY-MM-DD (default: today)")
	moodAddCmd.Flags().StringVar(&moodAddNotes, "notes", "", "free-text notes")
	moodAddCmd.Flags().StringSliceVar(&moodAddFactors, "factors", nil, "contributing factors")
	moodListCmd.Flags().IntVar(&moodListLimit, "limit", 0, "maximum number of results (0 = no limit)")

	moodCmd.AddCommand(moodAddCmd)
	moodCmd.AddCommand(moodListCmd)
	moodCmd.AddCommand(moodDeleteCmd)
}
