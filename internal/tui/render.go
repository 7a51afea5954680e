package tui

import (
	"fmt"
	"strings"

	"showcase-cli/internal/config"
)

// ─── Welcome banner ─────────────────────────────────────────────────────────

func renderWelcome(version string, cfg *config.Config, width int) string {
	var s strings.Builder

	s.WriteString("\n")
	s.WriteString("  " + logoAccentStyle.Render("◆") + " " + logoTitleStyle.Render("Showcase") + " " + versionStyle.Render(version))
	s.WriteString("\n")

	if cfg != nil && cfg.CustomerName != "" {
		s.WriteString("  " + welcomeInfoLabel.Render("customer: ") + cfg.CustomerName)
		if cfg.Profile != "" {
			s.WriteString(welcomeInfoLabel.Render("  profile: ") + cfg.Profile)
		}
		s.WriteString("\n")
	} else if cfg == nil || cfg.APIURL == "" {
		s.WriteString("  " + warnMsgStyle.Render("not connected") + welcomeInfoLabel.Render(" — run /connect <frontend-url>"))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString("  " + welcomeHintStyle.Render("Ask a question, or type / for commands."))
	s.WriteString("\n")

	return s.String()
}

// ─── Help ───────────────────────────────────────────────────────────────────

func renderHelp() string {
	var s strings.Builder

	s.WriteString(sectionHeaderStyle.Render("  Commands"))
	s.WriteString("\n")

	maxLen := 0
	for _, c := range slashCommands {
		if len(c.name) > maxLen {
			maxLen = len(c.name)
		}
	}
	for _, c := range slashCommands {
		padded := c.name + strings.Repeat(" ", maxLen-len(c.name))
		s.WriteString("  " + cmdNameStyle.Render(padded) + "  " + cmdDescStyle.Render(c.desc))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("  Any other input is sent to chat. Esc cancels a running request."))

	return s.String()
}

// ─── Config view ────────────────────────────────────────────────────────────

func renderConfig(cfg *config.Config, profile string) string {
	if cfg == nil || cfg.APIURL == "" {
		return errorMsgStyle.Render("  ✗ Not connected. Run: /connect <frontend-url>")
	}

	var s strings.Builder
	s.WriteString(sectionHeaderStyle.Render("  Configuration"))
	s.WriteString("\n")

	row := func(key, val string) {
		if val == "" {
			val = dimStyle.Render("(unset)")
		}
		s.WriteString(fmt.Sprintf("  %s %s\n", welcomeInfoLabel.Render(fmt.Sprintf("%-16s", key)), val))
	}

	row("profile", config.ProfileName(profile))
	row("server", cfg.Server)
	row("api_url", cfg.APIURL)
	row("customer_name", cfg.CustomerName)
	row("default_tab", cfg.DefaultTab)
	row("item_limit", fmt.Sprintf("%d", cfg.Limit()))
	row("generate_images", fmt.Sprintf("%t", cfg.GenerateImages))

	return strings.TrimRight(s.String(), "\n")
}
