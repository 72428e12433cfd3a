package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/storage"
	"github.com/calistheniq/calistheniq/internal/tracker"
	"github.com/calistheniq/calistheniq/internal/utils"
)

var logSessionCmd = &cobra.Command{
	Use:   "log [file]",
	Short: "Log a workout session from a TOML file and update gate/week progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := utils.ParseSessionFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse session file: %w", err)
		}

		st := storage.NewStorage()
		tr := tracker.New(st)

		res, err := tr.LogSession(*session)
		if err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		printBoxedHeader("SESSION LOGGED")
		printMetric("Category", session.Category)
		printMetric("Level", session.Level)
		printMetric("Date", utils.FormatDay(session.Date))
		fmt.Println()

		printSessionResult(res.Result)
		fmt.Println()

		printMetric("Gate", fmt.Sprintf("%d consecutive clean (%s)",
			res.Gate.ConsecutivePasses, res.Gate.Status))
		printMetric("Week", fmt.Sprintf("%d/3 categories trained", engine.CompletedCount(res.Week)))

		if res.LeveledUp {
			banner := color.New(color.FgGreen, color.Bold).SprintFunc()
			fmt.Printf("\n%s\n", banner(fmt.Sprintf("🎉 LEVEL UP! %s is now level %d", session.Category, res.NewLevel)))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(logSessionCmd)
}
