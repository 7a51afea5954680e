package cmd

import (
	"fmt"
	"strings"

	"showcase-cli/internal/display"
	"showcase-cli/internal/service"

	"github.com/spf13/cobra"
)

var (
	ideateLimit    int
	ideateItemType string
	ideateImages   bool
)

var ideateCmd = &cobra.Command{
	Use:   "ideate [prompt]",
	Short: "Generate product ideas for a prompt",
	Long:  "Generate product ideas. With no prompt, the last used prompt is replayed.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := loadClient()
		if err != nil {
			return err
		}

		prompt := strings.Join(args, " ")
		if prompt == "" {
			prompt = cfg.LastPrompt
		}
		if prompt == "" {
			return fmt.Errorf("no prompt given and no previous prompt to replay")
		}
		limit := ideateLimit
		if limit == 0 {
			limit = cfg.Limit()
		}

		display.Header("Ideas: " + prompt)

		var list service.ItemList
		handle := func(ev service.ItemEvent) {
			before := len(list.Items)
			list = service.ApplyItem(list, ev)
			if len(list.Items) > before {
				item := list.Items[len(list.Items)-1]
				display.Bullet(item.Label(), item.Description)
			}
		}

		if ideateItemType != "" {
			images := ideateImages || cfg.GenerateImages
			err = client.SiteItemStream(prompt, ideateItemType, limit, images, handle)
		} else {
			err = client.IdeaStream(prompt, limit, handle)
		}
		if err != nil {
			return err
		}

		fmt.Println()
		display.Success(fmt.Sprintf("%d ideas", len(list.Items)))

		if prompt != cfg.LastPrompt {
			cfg.LastPrompt = prompt
			if serr := cfg.Save(); serr != nil {
				display.Warn("could not remember prompt: " + serr.Error())
			}
		}
		return nil
	},
}

func init() {
	ideateCmd.Flags().IntVar(&ideateLimit, "limit", 0, "maximum number of ideas to stream")
	ideateCmd.Flags().StringVar(&ideateItemType, "type", "", "item type to generate (uses the generic item endpoint)")
	ideateCmd.Flags().BoolVar(&ideateImages, "images", false, "ask the backend to generate images")
	rootCmd.AddCommand(ideateCmd)
}
