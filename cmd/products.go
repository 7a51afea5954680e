package cmd

import (
	"showcase-cli/internal/api"
	"showcase-cli/internal/display"

	"github.com/spf13/cobra"
)

var (
	productDisplayName  string
	productDescription  string
	productExternalLink string
	productInternalLink string
	productIcon         string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage catalog products",
}

var productsAddCmd = &cobra.Command{
	Use:   "add <display-name>",
	Short: "Add a product to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		p := api.Product{
			DisplayName:  args[0],
			Description:  productDescription,
			ExternalLink: productExternalLink,
			InternalLink: productInternalLink,
			Icon:         productIcon,
		}
		if err := client.AddProduct(p); err != nil {
			return err
		}
		display.Success("Added " + args[0])
		return nil
	},
}

var productsSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		p := api.Product{
			DisplayName:  productDisplayName,
			Description:  productDescription,
			ExternalLink: productExternalLink,
			InternalLink: productInternalLink,
			Icon:         productIcon,
		}
		if err := client.UpdateProduct(args[0], p); err != nil {
			return err
		}
		display.Success("Updated " + args[0])
		return nil
	},
}

var productsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		if err := client.DeleteProduct(args[0]); err != nil {
			return err
		}
		display.Success("Removed " + args[0])
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{productsAddCmd, productsSetCmd} {
		c.Flags().StringVar(&productDescription, "description", "", "product description")
		c.Flags().StringVar(&productExternalLink, "external-link", "", "external product link")
		c.Flags().StringVar(&productInternalLink, "internal-link", "", "internal product link")
		c.Flags().StringVar(&productIcon, "icon", "", "product icon name")
	}
	productsSetCmd.Flags().StringVar(&productDisplayName, "display-name", "", "new display name")

	productsCmd.AddCommand(productsAddCmd, productsSetCmd, productsRmCmd)
	rootCmd.AddCommand(productsCmd)
}
