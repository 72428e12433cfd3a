package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/storage"
	"github.com/calistheniq/calistheniq/internal/utils"
)

// showSessionCmd re-evaluates a stored session against its gate criteria
// and prints the breakdown. Evaluation is deterministic, so this always
// matches what 'log' reported at the time.
var showSessionCmd = &cobra.Command{
	Use:   "show-session [session-id]",
	Short: "Show a logged session and its evaluation against the gate criteria",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		session, err := st.GetSessionByID(args[0])
		if err != nil {
			return err
		}

		criteria, err := st.GetGateCriteria(session.Category, session.Level)
		if err != nil {
			return err
		}

		printBoxedHeader("SESSION")
		printMetric("Category", session.Category)
		printMetric("Level", session.Level)
		printMetric("Date", utils.FormatDay(session.Date))
		if session.Notes != "" {
			printMetric("Notes", session.Notes)
		}
		fmt.Println()

		if criteria == nil {
			fmt.Println("  No gate criteria defined for this level — session counts as clean.")
			return nil
		}

		printSessionResult(engine.EvaluateSession(*session, criteria))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
