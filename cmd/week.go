package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/models"
	"github.com/calistheniq/calistheniq/internal/storage"
	"github.com/calistheniq/calistheniq/internal/tracker"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show which categories were trained in the current week",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		tr := tracker.New(st)

		snap, err := tr.Load(time.Now())
		if err != nil {
			return fmt.Errorf("failed to load progress: %w", err)
		}

		printBoxedHeader("WEEK " + snap.Week.WeekStart)

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()

		for _, c := range models.Categories {
			mark := red("✗ not yet")
			if snap.Week.Done(c) {
				mark = green("✓ trained")
			}
			fmt.Printf("  • %s: %s\n", magenta(c), mark)
		}
		fmt.Println()

		printMetric("Completed", fmt.Sprintf("%d/3", engine.CompletedCount(snap.Week)))
		printMetric("Streak", fmt.Sprintf("%d weeks", snap.Streak))
		if engine.IsWeekComplete(snap.Week) {
			fmt.Printf("  %s\n", green("All three categories trained — week complete!"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
