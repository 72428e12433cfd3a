package cmd

import (
	"fmt"

	"github.com/calistheniq/calistheniq/internal/storage"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database and create the local user at level 1",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		user, err := st.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("✅ Database initialized, user %s ready\n", user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
