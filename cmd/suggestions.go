package cmd

import (
	"fmt"

	"showcase-cli/internal/display"

	"github.com/spf13/cobra"
)

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Show suggested chat questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadClient()
		if err != nil {
			return err
		}

		questions, err := client.SuggestedQuestions()
		if err != nil {
			return err
		}

		display.Header("Suggested Questions")
		for i, q := range questions {
			fmt.Printf("  %d. %s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestionsCmd)
}
