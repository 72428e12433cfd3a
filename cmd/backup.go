package cmd

import (
	"fmt"

	"github.com/calistheniq/calistheniq/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all progress data to a TOML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "calistheniq_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		st := storage.NewStorage()
		if err := st.ExportDataToTOML(outputFile); err != nil {
			return fmt.Errorf("error exporting data: %w", err)
		}

		fmt.Printf("✅ Progress exported successfully to %s\n", outputFile)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [dump-file]",
	Short: "Rebuild the database from a TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		if err := st.RestoreDataFromTOML(args[0]); err != nil {
			return fmt.Errorf("failed to restore data: %w", err)
		}

		fmt.Println("✅ Progress restored successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
}
