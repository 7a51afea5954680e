package cmd

import (
	"fmt"

	"showcase-cli/internal/api"
	"showcase-cli/internal/display"

	"github.com/spf13/cobra"
)

var (
	tabLabel    string
	tabPrompt   string
	tabItemType string
	tabImages   bool
)

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Manage ideator tabs",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		tabs, err := client.ListTabs()
		if err != nil {
			return err
		}

		display.Header("Ideator Tabs")
		if len(tabs) == 0 {
			fmt.Println("  (no tabs configured)")
			return nil
		}
		for _, t := range tabs {
			display.Bullet(t.Label, fmt.Sprintf("type=%s id=%s", t.ItemType, t.ID))
			if t.Prompt != "" {
				fmt.Printf("    %s\n", t.Prompt)
			}
		}
		return nil
	},
}

var tabsAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Create an ideator tab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		created, err := client.CreateTab(api.Tab{
			Label:          args[0],
			Prompt:         tabPrompt,
			ItemType:       tabItemType,
			GenerateImages: tabImages,
		})
		if err != nil {
			return err
		}
		display.Success(fmt.Sprintf("Created tab %s (%s)", created.Label, created.ID))
		return nil
	},
}

var tabsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update an ideator tab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		err = client.UpdateTab(args[0], api.Tab{
			Label:          tabLabel,
			Prompt:         tabPrompt,
			ItemType:       tabItemType,
			GenerateImages: tabImages,
		})
		if err != nil {
			return err
		}
		display.Success("Updated tab " + args[0])
		return nil
	},
}

var tabsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an ideator tab",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		if err := client.DeleteTab(args[0]); err != nil {
			return err
		}
		display.Success("Deleted tab " + args[0])
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{tabsAddCmd, tabsSetCmd} {
		c.Flags().StringVar(&tabPrompt, "prompt", "", "generation prompt for the tab")
		c.Flags().StringVar(&tabItemType, "type", "idea", "item type the tab generates")
		c.Flags().BoolVar(&tabImages, "images", false, "generate images for tab items")
	}
	tabsSetCmd.Flags().StringVar(&tabLabel, "label", "", "new tab label")

	tabsCmd.AddCommand(tabsAddCmd, tabsSetCmd, tabsRmCmd)
	rootCmd.AddCommand(tabsCmd)
}
