package cmd

import (
	"fmt"
	"strings"

	"showcase-cli/internal/api"
	"showcase-cli/internal/display"
	"showcase-cli/internal/service"

	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product <name>",
	Short: "Generate the detail page for a product",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		display.Header(name)

		var detail service.ProductDetail
		printed := map[string]bool{}
		err = client.ProductDetailStream(name, func(ev service.ProductEvent) {
			detail = service.ApplyProduct(detail, ev)
			switch ev.Kind {
			case service.ProductSectionStart:
				display.Spinner("Generating " + ev.Section + "...")
			case service.ProductSectionEnd:
				display.ClearLine()
				if s, ok := detail.Section(ev.Section); ok {
					display.SubHeader(display.SectionLabel(s.Name))
					fmt.Println(api.RenderMarkdown(s.Text))
					printed[s.Name] = true
				}
			}
		})
		if err != nil {
			return err
		}

		// Cached details arrive as one full payload with no section
		// markers; print whatever the loop above didn't.
		for _, s := range detail.Sections {
			if !printed[s.Name] {
				display.SubHeader(display.SectionLabel(s.Name))
				fmt.Println(api.RenderMarkdown(s.Text))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productCmd)
}
