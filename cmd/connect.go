package cmd

import (
	"showcase-cli/internal/api"
	"showcase-cli/internal/config"
	"showcase-cli/internal/display"

	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:   "connect <frontend-url>",
	Short: "Connect to a showcase frontend",
	Long: `Connect resolves the backend API URL from the frontend's
config.json and saves it to the active profile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg, err := api.FetchAppConfig(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.Load(flagProfile)
		if err != nil {
			return err
		}
		cfg.Server = args[0]
		cfg.APIURL = appCfg.APIURL
		cfg.CustomerName = appCfg.CustomerName
		if err := cfg.Save(); err != nil {
			return err
		}

		name := cfg.CustomerName
		if name == "" {
			name = cfg.APIURL
		}
		display.Success("Connected to " + name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
