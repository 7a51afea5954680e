package cmd

import (
	"fmt"
	"strconv"

	"showcase-cli/internal/config"
	"showcase-cli/internal/display"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagProfile)
		if err != nil {
			return err
		}

		display.Header("Configuration")
		display.Info("profile", config.ProfileName(flagProfile))
		display.Info("server", cfg.Server)
		display.Info("api_url", cfg.APIURL)
		display.Info("customer_name", cfg.CustomerName)
		display.Info("default_tab", cfg.DefaultTab)
		display.Info("item_limit", strconv.Itoa(cfg.Limit()))
		display.Info("generate_images", strconv.FormatBool(cfg.GenerateImages))

		profiles, err := config.ListProfiles()
		if err == nil && len(profiles) > 0 {
			display.SubHeader("Profiles")
			for _, p := range profiles {
				fmt.Printf("  %s\n", p)
			}
		}
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (limit, tab, images)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagProfile)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "limit":
			n, aerr := strconv.Atoi(value)
			if aerr != nil || n < 1 {
				return fmt.Errorf("limit must be a positive number, got %q", value)
			}
			cfg.ItemLimit = n
		case "tab":
			cfg.DefaultTab = value
		case "images":
			on, perr := strconv.ParseBool(value)
			if perr != nil {
				return fmt.Errorf("images must be true or false, got %q", value)
			}
			cfg.GenerateImages = on
		default:
			return fmt.Errorf("unknown setting %q (keys: limit, tab, images)", key)
		}

		if err := cfg.Save(); err != nil {
			return err
		}
		display.Success(fmt.Sprintf("%s = %s", key, value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd, setCmd)
}
