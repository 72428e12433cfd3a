package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calistheniq/calistheniq/internal/config"
	"github.com/calistheniq/calistheniq/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "calistheniq",
	Short: "CLI skill-tree tracker for calisthenics progressions",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		params := logging.SetupParams{LogLevel: "warn"}
		if cfg, err := config.LoadConfig(); err == nil {
			if cfg.Log.Level != "" {
				params.LogLevel = cfg.Log.Level
			}
			params.LogFileName = cfg.Log.File
			params.LogToStdout = cfg.Log.Stdout
		}
		logging.Setup(params)
	},
}

func Execute() error {
	return rootCmd.Execute()
}
