package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive shell in inline mode so streamed output
// scrolls into regular terminal history.
func Run(version, profile string) error {
	p := tea.NewProgram(initialModel(version, profile))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive shell: %w", err)
	}
	return nil
}
