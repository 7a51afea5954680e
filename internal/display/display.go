package display

import (
	"fmt"
	"os"
	"strings"
)

const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"
)

func Header(text string) {
	fmt.Printf("\n%s%s%s\n", Bold+Cyan, text, Reset)
	fmt.Println(strings.Repeat("─", min(len(text)+4, 80)))
}

func SubHeader(text string) {
	fmt.Printf("%s%s%s\n", Bold+White, text, Reset)
}

func Success(text string) {
	fmt.Printf("%s✓%s %s\n", Green, Reset, text)
}

func Error(text string) {
	fmt.Fprintf(os.Stderr, "%s✗%s %s\n", Red, Reset, text)
}

func Warn(text string) {
	fmt.Printf("%s!%s %s\n", Yellow, Reset, text)
}

func Info(label, value string) {
	fmt.Printf("  %s%-20s%s %s\n", Dim, label, Reset, value)
}

func Spinner(text string) {
	fmt.Printf("\r%s⟳%s %s", Yellow, Reset, text)
}

func ClearLine() {
	fmt.Print("\r\033[K")
}

// Bullet prints one list entry with a dimmed secondary line.
func Bullet(title, detail string) {
	fmt.Printf("  • %s%s%s\n", Bold, title, Reset)
	if detail != "" {
		fmt.Printf("    %s%s%s\n", Gray, detail, Reset)
	}
}

// SectionLabel maps a product-detail section name to its display form.
func SectionLabel(section string) string {
	labels := map[string]string{
		"overview": "📋 Overview",
		"features": "⚙️  Features",
		"benefits": "✨ Benefits",
		"pricing":  "💲 Pricing",
	}
	if label, ok := labels[section]; ok {
		return label
	}
	return strings.ToUpper(section[:1]) + section[1:]
}
