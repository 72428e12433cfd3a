package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calistheniq/calistheniq/internal/models"
	"github.com/calistheniq/calistheniq/internal/storage"
)

var (
	gateCategory string
	gateLevel    int
)

// showGateCmd prints the gate requirements for a (category, level) and
// the user's progress through it.
var showGateCmd = &cobra.Command{
	Use:   "show-gate",
	Short: "Show the gate criteria and progress for a category and level",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := models.ParseCategory(gateCategory)
		if err != nil {
			return err
		}

		st := storage.NewStorage()

		level := gateLevel
		if level == 0 {
			user, err := st.GetUser()
			if err != nil {
				return err
			}
			level = user.Levels[category]
		}

		criteria, err := st.GetGateCriteria(category, level)
		if err != nil {
			return err
		}

		printBoxedHeader(fmt.Sprintf("GATE %s L%d", category, level))

		if criteria == nil {
			fmt.Println("  No gate defined for this level.")
			return nil
		}

		magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
		for _, ex := range criteria.Exercises {
			target := fmt.Sprintf("%d sets × %d reps", ex.TargetSets, ex.Target.Value)
			if ex.Target.Kind == models.MetricHold {
				target = fmt.Sprintf("%d sets × %ds hold", ex.TargetSets, ex.Target.Value)
			}
			fmt.Printf("  • %s: %s\n", magenta(ex.ExerciseID), target)
		}
		fmt.Println()
		printMetric("Required clean sessions", criteria.RequiredConsecutivePasses)

		gate, err := st.GetGateProgress(category, level)
		if err != nil {
			return err
		}
		if gate != nil {
			printMetric("Progress", fmt.Sprintf("%d consecutive clean (%s)",
				gate.ConsecutivePasses, gate.Status))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showGateCmd)
	showGateCmd.Flags().StringVarP(&gateCategory, "category", "c", "", "Category (push, pull or squat)")
	showGateCmd.Flags().IntVarP(&gateLevel, "level", "l", 0, "Level (defaults to the category's current level)")
	showGateCmd.MarkFlagRequired("category")
}
