package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/models"
	"github.com/calistheniq/calistheniq/internal/storage"
	"github.com/calistheniq/calistheniq/internal/utils"
)

var (
	filterCategory string
	filterDay      string
)

// historyCmd shows the session log grouped by training week and day.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display session history, optionally filtered by category and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		sessions, err := st.GetSessions()
		if err != nil {
			return fmt.Errorf("failed to retrieve sessions: %w", err)
		}

		// Case insensitive filtering by category.
		if filterCategory != "" {
			var filtered []models.WorkoutSession
			for _, s := range sessions {
				if strings.EqualFold(string(s.Category), filterCategory) {
					filtered = append(filtered, s)
				}
			}
			sessions = filtered
		}

		// If filtering by day.
		if filterDay != "" {
			parsedDay, err := utils.ParseDay(filterDay)
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}

			var filtered []models.WorkoutSession
			for _, s := range sessions {
				if utils.FormatDay(s.Date) == utils.FormatDay(parsedDay) {
					filtered = append(filtered, s)
				}
			}
			sessions = filtered
		}

		// Group sessions by week, then by day.
		grouped := make(map[string]map[string][]models.WorkoutSession)
		for _, s := range sessions {
			week := engine.WeekStart(s.Date)
			if _, ok := grouped[week]; !ok {
				grouped[week] = make(map[string][]models.WorkoutSession)
			}
			day := utils.FormatDay(s.Date)
			grouped[week][day] = append(grouped[week][day], s)
		}

		var weeks []string
		for w := range grouped {
			weeks = append(weeks, w)
		}
		sort.Strings(weeks)

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()

		for _, w := range weeks {
			fmt.Printf("%s\n", cyan("Week of "+w))
			var days []string
			for d := range grouped[w] {
				days = append(days, d)
			}
			sort.Strings(days)
			for _, d := range days {
				for _, s := range grouped[w][d] {
					note := ""
					if s.Notes != "" {
						note = " — " + s.Notes
					}
					fmt.Printf("  %s  %s L%d (%d exercises) [%s]%s\n",
						d, magenta(s.Category), s.Level, len(s.Exercises), s.ID, note)
				}
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Filter by category (push, pull or squat)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
}
