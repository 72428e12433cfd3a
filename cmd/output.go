package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/models"
)

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// printSessionResult renders a per-exercise evaluation breakdown.
func printSessionResult(result engine.SessionResult) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()

	for _, ex := range result.Exercises {
		mark := green("✓")
		if !ex.Met {
			mark = red("✗")
		}

		target := fmt.Sprintf("%d×%d reps", ex.TargetSets, ex.Target.Value)
		actual := fmt.Sprintf("%v", ex.ActualReps)
		if ex.Target.Kind == models.MetricHold {
			target = fmt.Sprintf("%d×%ds hold", ex.TargetSets, ex.Target.Value)
			actual = fmt.Sprintf("%vs", ex.ActualHoldSeconds)
		}

		fmt.Printf("  %s %s — target %s, did %d sets %s\n",
			mark, magenta(ex.ExerciseID), target, ex.ActualCheckedSets, actual)
	}

	verdict := green("CLEAN")
	if !result.IsClean {
		verdict = red("NOT CLEAN")
	}
	fmt.Printf("  Session: %s (%d%% of targets met)\n", verdict, result.CompletionPct)
}

func nodeStateSymbol(state models.NodeState) string {
	switch state {
	case models.NodePassed:
		return color.New(color.FgGreen, color.Bold).Sprint("✓")
	case models.NodeInProgress:
		return color.New(color.FgYellow, color.Bold).Sprint("●")
	case models.NodeOpen:
		return color.New(color.FgCyan, color.Bold).Sprint("○")
	default:
		return color.New(color.FgHiBlack).Sprint("🔒")
	}
}
