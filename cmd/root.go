package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrewpaige1/studyset-web/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "studyset-web",
	Short: "Study set dashboard and editor",
	Long: `studyset-web serves the study set dashboard: listing, creating,
editing, deleting and playing study sets stored by the backend API.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

// loadConfig reads .env, the config file and the environment, and sets up
// logging. Every command starts here.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Warning: .env file not loaded")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.SetupLogger(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
