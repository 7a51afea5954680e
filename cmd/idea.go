package cmd

import (
	"fmt"
	"strings"

	"showcase-cli/internal/api"
	"showcase-cli/internal/display"
	"showcase-cli/internal/service"

	"github.com/spf13/cobra"
)

var ideaCmd = &cobra.Command{
	Use:   "idea <title>",
	Short: "Generate press release, social posts and reviews for an idea",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")
		display.Header(title)

		var detail service.IdeaDetail
		err = client.IdeaDetailStream(title, func(ev service.IdeaEvent) {
			detail = service.ApplyIdea(detail, ev)
			switch ev.Kind {
			case service.IdeaPressReleaseStart:
				display.Spinner("Writing press release...")
			case service.IdeaSocialStart:
				display.Spinner("Writing social posts...")
			case service.IdeaPressReleaseEnd:
				display.ClearLine()
				display.SubHeader("Press Release")
				fmt.Println(api.RenderMarkdown(detail.PressRelease))
			case service.IdeaSocialEnd:
				display.ClearLine()
				display.SubHeader("Social Media")
				fmt.Println(api.RenderMarkdown(detail.SocialMedia))
			case service.IdeaReviewsEnd:
				display.SubHeader("Customer Reviews")
				for _, review := range detail.Reviews {
					fmt.Printf("  “%s”\n", review)
				}
			}
		})
		if err != nil {
			return err
		}

		if detail.PressRelease == "" && detail.SocialMedia == "" && len(detail.Reviews) == 0 {
			display.Warn("No detail generated for " + title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ideaCmd)
}
