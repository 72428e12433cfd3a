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
	"github.com/calistheniq/calistheniq/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current levels, this week's training progress and the weekly streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		tr := tracker.New(st)

		snap, err := tr.Load(time.Now())
		if err != nil {
			return fmt.Errorf("failed to load progress: %w", err)
		}

		printBoxedHeader("STATUS")

		magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
		green := color.New(color.FgGreen, color.Bold).SprintFunc()

		for _, c := range models.Categories {
			gate := snap.Gates[c]
			level := snap.User.Levels[c]
			detail := fmt.Sprintf("level %d (max)", level)
			if level < models.MaxLevel {
				detail = fmt.Sprintf("level %d — %d/%d clean sessions toward level %d",
					level, gate.ConsecutivePasses, engine.RequiredConsecutivePasses, level+1)
			}
			if gate.LastSessionDate != nil {
				detail += fmt.Sprintf(" (last trained %s)", utils.FormatDay(*gate.LastSessionDate))
			}
			fmt.Printf("  • %s: %s\n", magenta(c), detail)
		}
		fmt.Println()

		printMetric("This week", fmt.Sprintf("%d/3 categories trained", engine.CompletedCount(snap.Week)))
		if engine.IsWeekComplete(snap.Week) {
			fmt.Printf("  %s\n", green("Week complete!"))
		}
		printMetric("Week streak", fmt.Sprintf("%d weeks", snap.Streak))
		printMetric("Total sessions", len(snap.Sessions))
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
