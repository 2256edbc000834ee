// Backup commands manage imported backups and restores.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var (
	backupAddTitle  string
	backupAddSource string
	backupAddDate   string
	backupListLimit int
	backupCheckDate string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage imported journal backups",
}

var backupAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Archive content as an imported backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		backup, err := repo.AddBackup(&types.ImportedBackup{
			Title:        backupAddTitle,
			Content:      args[0],
			Date:         backupAddDate,
			ImportSource: backupAddSource,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(backup)
		}
		fmt.Println("Archived backup:", backup.ID)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		backups, err := repo.ListBackups(backupListLimit, 0)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(backups)
		}
		if len(backups) == 0 {
			fmt.Println("No backups found.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSOURCE\tMETHOD\tCHECKSUM")
		fmt.Fprintln(w, "--\t----\t------\t------\t--------")
		for _, b := range backups {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				shortID(b.ID), b.Date, b.ImportSource, b.ImportMethod, b.Checksum)
		}
		w.Flush()
		for _, line := range strings.Split(sb.String(), "\n") {
			fmt.Println(strings.TrimRight(line, " "))
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a backup into a new journal entry",
	Long: `Restore copies the backup into a fresh journal entry. The backup
itself is kept; restoring twice produces two entries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		entry, err := repo.RestoreFromBackup(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(entry)
		}
		fmt.Println("Restored backup into entry:", entry.ID)
		return nil
	},
}

var backupCheckDupCmd = &cobra.Command{
	Use:   "check-dup <content>",
	Short: "Check whether content is a likely duplicate of a stored backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		dup, err := repo.CheckDuplicate(args[0], backupCheckDate)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]bool{"duplicate": dup})
		}
		if dup {
			fmt.Println("Likely duplicate of a stored backup.")
		} else {
			fmt.Println("No matching backup found.")
		}
		return nil
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an imported backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := repo.DeleteBackup(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted backup:", args[0])
		return nil
	},
}

func init() {
	backupAddCmd.Flags().StringVar(&backupAddTitle, "title", "", "backup title")
	backupAddCmd.Flags().StringVar(&backupAddDate, "date", "", "original entry date YYYY-MM-DD")
	backupAddCmd.Flags().StringVar(&backupAddSource, "source", "manual", "import source label")
	backupListCmd.Flags().IntVar(&backupListLimit, "limit", 0, "maximum number of results (0 = no limit)")
	backupCheckDupCmd.Flags().StringVar(&backupCheckDate, "date", "", "entry date YYYY-MM-DD used in the checksum")

	backupCmd.AddCommand(backupAddCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupCheckDupCmd)
	backupCmd.AddCommand(backupDeleteCmd)
}
