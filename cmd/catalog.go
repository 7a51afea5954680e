package cmd

import (
	"fmt"

	"showcase-cli/internal/display"
	"showcase-cli/internal/service"

	"github.com/spf13/cobra"
)

var catalogLimit int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Stream the product catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}

		limit := catalogLimit
		if limit == 0 {
			limit = cfg.Limit()
		}

		display.Header("Product Catalog")

		var list service.ItemList
		err = client.ProductStream(limit, func(ev service.ItemEvent) {
			before := len(list.Items)
			list = service.ApplyItem(list, ev)
			if len(list.Items) > before {
				item := list.Items[len(list.Items)-1]
				display.Bullet(item.Label(), item.Description)
			}
		})
		if err != nil {
			return err
		}

		fmt.Println()
		display.Success(fmt.Sprintf("%d products", len(list.Items)))
		return nil
	},
}

func init() {
	catalogCmd.Flags().IntVar(&catalogLimit, "limit", 0, "maximum number of products to stream")
	rootCmd.AddCommand(catalogCmd)
}
