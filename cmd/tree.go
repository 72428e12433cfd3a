package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/models"
	"github.com/calistheniq/calistheniq/internal/storage"
)

// treeCmd renders the skill tree: one column per category, levels 1–5,
// each node in its derived state.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the skill tree with the state of every node",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		user, err := st.GetUser()
		if err != nil {
			return err
		}

		printBoxedHeader("SKILL TREE")

		magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
		for _, c := range models.Categories {
			fmt.Printf("  %s (level %d)\n", magenta(c), user.Levels[c])

			for level := models.MaxLevel; level >= models.MinLevel; level-- {
				gate, err := st.GetGateProgress(c, level)
				if err != nil {
					return err
				}
				if gate == nil {
					seeded := engine.CreateGateProgress(c, level, user.Levels[c])
					gate = &seeded
				}

				state := engine.NodeState(*gate, user.Levels)
				progress := ""
				if state == models.NodeInProgress {
					progress = fmt.Sprintf(" (%d/%d clean)",
						gate.ConsecutivePasses, engine.RequiredConsecutivePasses)
				}
				fmt.Printf("    %s L%d %s%s\n", nodeStateSymbol(state), level, state, progress)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
