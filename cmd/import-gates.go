package cmd

import (
	"fmt"
	"os"

	"github.com/calistheniq/calistheniq/internal/storage"
	"github.com/spf13/cobra"
)

var importGatesCmd = &cobra.Command{
	Use:   "import-gates [file]",
	Short: "Import gate criteria (the level-up requirements) from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		file, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := st.ImportGateCriteria(file); err != nil {
			return fmt.Errorf("failed to import gate criteria: %w", err)
		}

		fmt.Println("✅ Gate criteria imported successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importGatesCmd)
}
