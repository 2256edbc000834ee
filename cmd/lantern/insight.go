// Insight commands manage stored AI insights. Insights are generated
// externally and arrive as pre-built JSON records.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var insightListLimit int

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Manage stored AI insights",
}

var insightAddCmd = &cobra.Command{
	Use:   "add <file.json>",
	Short: "Store an insight record from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read insight file: %w", err)
		}
		var insight types.DeepInsight
		if err := json.Unmarshal(data, &insight); err != nil {
			return fmt.Errorf("parse insight file: %w", err)
		}

		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		saved, err := repo.AddInsight(&insight)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Println("Stored insight:", saved.ID)
		return nil
	},
}

var insightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List insights, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		insights, err := repo.ListInsights(insightListLimit, 0)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(insights)
		}
		if len(insights) == 0 {
			fmt.Println("No insights found.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tENTRY\tEMOTION\tINTENSITY\tCREATED")
		fmt.Fprintln(w, "--\t-----\t-------\t---------\t-------")
		for _, i := range insights {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\n",
				shortID(i.ID), shortID(i.JournalEntryID), i.PrimaryEmotion,
				i.Intensity, i.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
		for _, line := range strings.Split(sb.String(), "\n") {
			fmt.Println(strings.TrimRight(line, " "))
		}
		return nil
	},
}

var insightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an insight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := repo.DeleteInsight(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted insight:", args[0])
		return nil
	},
}

func init() {
	insightListCmd.Flags().IntVar(&insightListLimit, "limit", 0, "maximum number of results (0 = no limit)")

	insightCmd.AddCommand(insightAddCmd)
	insightCmd.AddCommand(insightListCmd)
	insightCmd.AddCommand(insightDeleteCmd)
}
