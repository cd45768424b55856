package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect stored assessment sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sums, err := st.ListSessions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sums) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-20s  %-8s  %-9s  %s\n",
			"ID", "Created", "Domain", "Tier", "Questions", "Scored")
		fmt.Println(strings.Repeat("─", 104))
		for _, sum := range sums {
			tier := string(sum.Tier)
			if sum.Mixed {
				tier = "mixed"
			}
			scored := ""
			if sum.Scored {
				scored = "✓"
			}
			fmt.Printf("%-36s  %-19s  %-20s  %-8s  %-9d  %s\n",
				sum.ID,
				sum.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(sum.Domain, 20),
				tier,
				sum.QuestionCount,
				scored,
			)
		}
		return nil
	},
}

var sessionsViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "Print one session as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sess, err := st.GetSession(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sess)
	},
}

func init() {
	sessionsListCmd.Flags().Int("limit", 20, "Maximum sessions to list (0 = all)")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsViewCmd)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
