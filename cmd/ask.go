package cmd

import (
	"fmt"
	"strings"

	"showcase-cli/internal/api"
	"showcase-cli/internal/display"
	"showcase-cli/internal/service"

	"github.com/spf13/cobra"
)

var askPromptModifier string

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")
		display.Header(question)

		var state service.ChatState
		err = client.ChatStream(api.ChatRequest{
			Question:       question,
			PromptModifier: askPromptModifier,
		}, func(ev service.ChatEvent) {
			state = service.ApplyChat(state, ev)
			if ev.Kind == service.ChatContent {
				fmt.Print(ev.Content)
			}
		})
		if err != nil {
			return err
		}
		fmt.Println()

		for _, src := range state.Sources {
			display.Info("source", src)
		}
		if state.Chart != nil {
			display.SubHeader(fmt.Sprintf("%s chart: %s", state.Chart.ChartType, state.Chart.Title))
			for _, pt := range state.Chart.Data {
				fmt.Printf("  %-24s %.1f\n", pt.Category, pt.Value)
			}
		}
		if len(state.Suggestions) > 0 {
			display.SubHeader("Suggested follow-ups")
			for i, q := range state.Suggestions {
				fmt.Printf("  %d. %s\n", i+1, q)
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askPromptModifier, "prompt-modifier", "", "extra instruction appended to the assistant prompt")
	rootCmd.AddCommand(askCmd)
}
