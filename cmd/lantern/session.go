// Session commands manage therapy sessions and their messages.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

var (
	sessionAddDate    string
	sessionListLimit  int
	sessionSaySender  string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage therapy sessions",
}

var sessionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Start a new therapy session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		session, err := repo.AddSession(&types.TherapySession{Date: sessionAddDate})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(session)
		}
		fmt.Println("Created session:", session.ID)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List therapy sessions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		sessions, err := repo.ListSessions(sessionListLimit, 0)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(sessions)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tSUMMARY")
		fmt.Fprintln(w, "--\t----\t-------")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(s.ID), s.Date, truncate(s.Summary, 50))
		}
		w.Flush()
		for _, line := range strings.Split(sb.String(), "\n") {
			fmt.Println(strings.TrimRight(line, " "))
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display a session and its messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		session, err := repo.GetSession(args[0])
		if err != nil {
			return err
		}
		messages, err := repo.Messages(session.ID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"session":  session,
				"messages": messages,
			})
		}

		fmt.Printf("ID:      %s\n", session.ID)
		fmt.Printf("Date:    %s\n", session.Date)
		if session.Summary != "" {
			fmt.Printf("Summary: %s\n", session.Summary)
		}
		if len(messages) > 0 {
			fmt.Println("\nMessages:")
			for _, m := range messages {
				fmt.Printf("  [%s] %s: %s\n",
					m.Timestamp.Format("15:04"), m.Sender, m.Content)
			}
		}
		return nil
	},
}

var sessionSayCmd = &cobra.Command{
	Use:   "say <session-id> <content>",
	Short: "Append a message to a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		message, err := repo.AddMessage(&types.TherapyMessage{
			SessionID: args[0],
			Content:   args[1],
			Sender:    sessionSaySender,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(message)
		}
		fmt.Println("Added message:", message.ID)
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a session and all of its messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepository()
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := repo.DeleteSession(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted session:", args[0])
		return nil
	},
}

func init() {
	sessionAddCmd.Flags().StringVar(&sessionAddDate, "date", "", "session date YYYY-MM-DD (default: today)")
	sessionListCmd.Flags().IntVar(&sessionListLimit, "limit", 0, "maximum number of results (0 = no limit)")
	sessionSayCmd.Flags().StringVar(&sessionSaySender, "sender", types.SenderUser, "message sender (user or therapist)")

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionSayCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
}
