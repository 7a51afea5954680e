package cmd

import (
	"os"

	"showcase-cli/internal/api"
	"showcase-cli/internal/config"
	"showcase-cli/internal/display"
	"showcase-cli/internal/tui"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagProfile string
	flagDebug   bool
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Terminal client for AI-generated product showcases",
	Long: `showcase is a terminal client for generative showcase sites:
chat with the assistant, stream the product catalog, generate product
ideas, and manage products and ideator tabs.

Run with no arguments for the interactive shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		log.SetOutput(os.Stderr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(version, flagProfile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "configuration profile to use")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(v string) {
	version = v
	if err := rootCmd.Execute(); err != nil {
		display.Error(err.Error())
		os.Exit(1)
	}
}

// loadClient loads the active profile and returns a connected API
// client, or an error telling the user to connect first.
func loadClient() (*config.Config, *api.Client, error) {
	cfg, err := config.Load(flagProfile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, api.NewClient(cfg), nil
}
