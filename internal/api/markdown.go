package api

import (
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// cleanHTML converts HTML breaks to newlines and removes all HTML tags.
// Answers occasionally carry markup from the knowledge base.
func cleanHTML(s string) string {
	s = strings.ReplaceAll(s, "<br/>", "\n")
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = strings.ReplaceAll(s, "<br />", "\n")
	return htmlTagRe.ReplaceAllString(s, "")
}

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
)

// RenderMarkdown renders a complete answer for the terminal. Falls
// back to plain stripped text if the renderer cannot be built (e.g.
// no usable terminal profile).
func RenderMarkdown(text string) string {
	rendererOnce.Do(func() {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(96),
		)
	})

	cleaned := cleanHTML(text)
	if renderer == nil {
		return cleaned
	}
	out, err := renderer.Render(cleaned)
	if err != nil {
		return cleaned
	}
	return strings.Trim(out, "\n")
}
