package tui

import (
	"fmt"
	"strings"

	"showcase-cli/internal/api"
	"showcase-cli/internal/config"
	"showcase-cli/internal/service"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ─── App mode ───────────────────────────────────────────────────────────────

type appMode int

const (
	modeIdle appMode = iota
	modeStreaming
)

// streamKind tells Update which fold the active stream feeds.
type streamKind int

const (
	streamNone streamKind = iota
	streamChat
	streamItems
	streamIdeaDetail
	streamProductDetail
)

// ─── Slash command registry ─────────────────────────────────────────────────

type slashCmd struct {
	name string
	desc string
}

var slashCommands = []slashCmd{
	{"/catalog", "Stream the product catalog"},
	{"/clear", "Clear the screen"},
	{"/config", "Show current configuration"},
	{"/connect", "Connect to a showcase frontend URL"},
	{"/help", "Show all commands"},
	{"/idea", "Generate detail for one idea"},
	{"/ideate", "Generate product ideas for a prompt"},
	{"/product", "Generated detail page for a product"},
	{"/quit", "Exit"},
	{"/set", "Change a setting (limit, tab, images)"},
	{"/suggestions", "Show suggested chat questions"},
	{"/tab", "Stream items for an ideator tab"},
	{"/tabs", "List ideator tabs"},
}

// ─── Model ──────────────────────────────────────────────────────────────────

type model struct {
	width  int
	height int

	// Bubble Tea components
	input   textinput.Model
	spinner spinner.Model

	// App state
	mode    appMode
	cfg     *config.Config
	client  api.ShowcaseAPI
	version string
	profile string

	// Request lifecycle: one tracker guards all streaming views; every
	// stream message carries the token it was started with.
	tracker *service.Tracker
	kind    streamKind

	// Accumulated stream state (reset when a new request begins)
	chat       service.ChatState
	items      service.ItemList
	idea       service.IdeaDetail
	product    service.ProductDetail
	lineBuffer string // partial output line awaiting its newline
	question   string // the prompt being streamed
	history    []string

	// UI state
	ready        bool
	cmdMenuIdx   int
	cmdMenuOpen  bool
	lastInputVal string
}

func initialModel(version, profile string) model {
	ti := textinput.New()
	ti.Placeholder = "Ask a question or type /help..."
	ti.Focus()
	ti.CharLimit = 4096
	ti.Prompt = "❯ "
	ti.PromptStyle = promptSymbol
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(colorViolet)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorViolet)

	cfg, _ := config.Load(profile)

	var client api.ShowcaseAPI
	if cfg != nil && cfg.APIURL != "" {
		client = api.NewClient(cfg)
	}

	return model{
		input:   ti,
		spinner: sp,
		version: version,
		profile: profile,
		cfg:     cfg,
		client:  client,
		mode:    modeIdle,
		tracker: &service.Tracker{},
	}
}

// ─── Init ───────────────────────────────────────────────────────────────────

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

// ─── Update ─────────────────────────────────────────────────────────────────

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 6

		if !m.ready {
			m.ready = true
			welcome := renderWelcome(m.version, m.cfg, m.width)
			cmds = append(cmds, tea.Println(welcome))
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			if m.mode == modeStreaming {
				return m.cancelStream("Request cancelled.")
			}
			return m, tea.Quit

		case tea.KeyEsc:
			if m.mode == modeStreaming {
				return m.cancelStream("Request cancelled.")
			}
			if m.cmdMenuOpen {
				m.cmdMenuOpen = false
				m.cmdMenuIdx = 0
				return m, nil
			}

		case tea.KeyUp:
			if m.mode == modeIdle && m.cmdMenuOpen {
				matches := matchCommands(m.input.Value())
				if len(matches) > 0 {
					m.cmdMenuIdx--
					if m.cmdMenuIdx < 0 {
						m.cmdMenuIdx = len(matches) - 1
					}
					return m, nil
				}
			}

		case tea.KeyDown:
			if m.mode == modeIdle && m.cmdMenuOpen {
				matches := matchCommands(m.input.Value())
				if len(matches) > 0 {
					m.cmdMenuIdx++
					if m.cmdMenuIdx >= len(matches) {
						m.cmdMenuIdx = 0
					}
					return m, nil
				}
			}

		case tea.KeyTab:
			if m.mode == modeIdle && m.cmdMenuOpen {
				matches := matchCommands(m.input.Value())
				if len(matches) > 0 {
					idx := m.cmdMenuIdx
					if idx < 0 || idx >= len(matches) {
						idx = 0
					}
					m.input.SetValue(matches[idx].name + " ")
					m.input.CursorEnd()
					m.cmdMenuOpen = false
					m.cmdMenuIdx = 0
				}
				return m, nil
			}

		case tea.KeyEnter:
			if m.mode == modeIdle && m.cmdMenuOpen && m.cmdMenuIdx >= 0 {
				matches := matchCommands(m.input.Value())
				if m.cmdMenuIdx < len(matches) {
					m.input.SetValue(matches[m.cmdMenuIdx].name + " ")
					m.input.CursorEnd()
					m.cmdMenuOpen = false
					m.cmdMenuIdx = 0
					return m, nil
				}
			}

			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.cmdMenuOpen = false
			m.cmdMenuIdx = 0

			if m.mode == modeIdle {
				return m.dispatchInput(value)
			}
		}

	// ── Stream messages ───────────────────────────────────────────────
	case chatEventMsg:
		if !m.tracker.Current(msg.token) {
			return m, nil // stale stream: drop, don't re-arm
		}
		printCmd := m.foldChatEvent(msg.ev)
		return m.continueStream(printCmd, cmds)

	case itemEventMsg:
		if !m.tracker.Current(msg.token) {
			return m, nil
		}
		printCmd := m.foldItemEvent(msg.ev)
		return m.continueStream(printCmd, cmds)

	case ideaEventMsg:
		if !m.tracker.Current(msg.token) {
			return m, nil
		}
		printCmd := m.foldIdeaEvent(msg.ev)
		return m.continueStream(printCmd, cmds)

	case productEventMsg:
		if !m.tracker.Current(msg.token) {
			return m, nil
		}
		printCmd := m.foldProductEvent(msg.ev)
		return m.continueStream(printCmd, cmds)

	case streamDoneMsg:
		if !m.tracker.Current(msg.token) {
			return m, nil
		}
		m.tracker.Finish(msg.token)
		return m.finishStream(cmds)

	case streamErrMsg:
		if !m.tracker.Current(msg.token) {
			return m, nil
		}
		m.tracker.Fail(msg.token)
		m.mode = modeIdle
		activeStreamCh = nil
		flush := m.flushLineBuffer()
		flush = append(flush, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ %v", msg.err))))
		m.kind = streamNone
		return m, tea.Batch(append(cmds, tea.Sequence(flush...))...)

	// ── Async results ─────────────────────────────────────────────────
	case connectResultMsg:
		return m.handleConnectResult(msg)

	case suggestionsMsg:
		return m.handleSuggestions(msg)

	case tabsMsg:
		return m.handleTabs(msg)
	}

	// Update sub-components
	var cmd tea.Cmd

	if m.mode != modeStreaming {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)

	// Track input changes to open/close the command menu
	newVal := m.input.Value()
	if newVal != m.lastInputVal {
		m.lastInputVal = newVal
		if strings.HasPrefix(newVal, "/") {
			m.cmdMenuOpen = true
			m.cmdMenuIdx = 0
		} else {
			m.cmdMenuOpen = false
			m.cmdMenuIdx = 0
		}
	}

	return m, tea.Batch(cmds...)
}

// ─── View ───────────────────────────────────────────────────────────────────
//
// Inline mode: View() only shows the input prompt + hints. All output
// is printed above via tea.Println.

func (m model) View() string {
	if !m.ready {
		return ""
	}

	var s strings.Builder

	if m.mode == modeStreaming {
		s.WriteString(m.spinner.View() + " " + statusStyle.Render(m.streamingStatus()))
	} else {
		s.WriteString(m.input.View())
	}
	s.WriteString("\n")

	sepWidth := min(m.width, 80)
	if sepWidth < 20 {
		sepWidth = 20
	}
	s.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	s.WriteString("\n")

	s.WriteString(m.renderHints())

	return s.String()
}

func (m model) streamingStatus() string {
	switch m.kind {
	case streamChat:
		return "Thinking..."
	case streamItems:
		return fmt.Sprintf("Generating items... (%d so far)", len(m.items.Items))
	case streamIdeaDetail:
		return "Generating idea detail..."
	case streamProductDetail:
		return "Generating product detail..."
	}
	return "Working..."
}

func (m model) renderHints() string {
	if m.mode == modeStreaming {
		return hintBarStyle.Render("  Esc cancel")
	}

	if m.cmdMenuOpen {
		matches := matchCommands(m.input.Value())
		if len(matches) > 0 {
			return m.renderCommandMenu(matches)
		}
	}

	return hintBarStyle.Render("  /help for commands")
}

func (m model) renderCommandMenu(matches []slashCmd) string {
	maxLen := 0
	for _, c := range matches {
		if len(c.name) > maxLen {
			maxLen = len(c.name)
		}
	}

	var lines []string
	for i, c := range matches {
		padded := c.name + strings.Repeat(" ", maxLen-len(c.name))

		var line string
		if i == m.cmdMenuIdx {
			line = "  " + cmdSelectedNameStyle.Render(padded) + "  " + cmdSelectedDescStyle.Render(c.desc)
		} else {
			line = "  " + cmdNameStyle.Render(padded) + "  " + cmdDescStyle.Render(c.desc)
		}
		lines = append(lines, line)
	}

	lines = append(lines, hintBarStyle.Render("  ↑↓ navigate  Tab/Enter select"))

	return strings.Join(lines, "\n")
}

func matchCommands(prefix string) []slashCmd {
	prefix = strings.ToLower(prefix)
	if prefix == "/" {
		return slashCommands
	}
	var matches []slashCmd
	for _, c := range slashCommands {
		if strings.HasPrefix(c.name, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}

// ─── Stream plumbing helpers ────────────────────────────────────────────────

func (m model) continueStream(printCmd tea.Cmd, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if printCmd != nil {
		cmds = append(cmds, printCmd)
	}
	if activeStreamCh != nil {
		cmds = append(cmds, waitForStream(activeStreamCh))
	}
	return m, tea.Batch(cmds...)
}

func (m model) cancelStream(note string) (tea.Model, tea.Cmd) {
	// Advancing the token is the cancellation: whatever the abandoned
	// stream still delivers fails the Current check and is dropped.
	m.tracker.Cancel()
	m.mode = modeIdle
	m.kind = streamNone
	activeStreamCh = nil
	m.lineBuffer = ""
	return m, tea.Println(warnMsgStyle.Render("  ! " + note))
}

func (m model) finishStream(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m.mode = modeIdle
	activeStreamCh = nil

	flush := m.flushLineBuffer()
	flush = append(flush, m.renderStreamSummary()...)

	if m.kind == streamChat && m.chat.Answer != "" {
		// Keep context for the next question: the backend expects
		// alternating human/AI entries.
		m.history = append(m.history, m.question, m.chat.Answer)
	}
	m.kind = streamNone

	return m, tea.Batch(append(cmds, tea.Sequence(flush...))...)
}

func (m *model) flushLineBuffer() []tea.Cmd {
	var cmds []tea.Cmd
	if strings.TrimSpace(m.lineBuffer) != "" {
		cmds = append(cmds, tea.Println("  "+m.lineBuffer))
	}
	m.lineBuffer = ""
	return cmds
}

// printLines emits complete lines from incremental text, buffering the
// trailing partial line until its newline arrives.
func (m *model) printLines(text string, cmds *[]tea.Cmd) {
	combined := m.lineBuffer + text
	lines := strings.Split(combined, "\n")
	for i, line := range lines {
		if i < len(lines)-1 {
			*cmds = append(*cmds, tea.Println("  "+line))
		} else {
			m.lineBuffer = line
		}
	}
}

// ─── Folds ──────────────────────────────────────────────────────────────────

func (m *model) foldChatEvent(ev service.ChatEvent) tea.Cmd {
	m.chat = service.ApplyChat(m.chat, ev)

	var cmds []tea.Cmd
	switch ev.Kind {
	case service.ChatContent:
		m.printLines(ev.Content, &cmds)

	case service.ChatMetadata:
		for _, src := range ev.Sources {
			cmds = append(cmds, tea.Println(sourceStyle.Render("  📎 ")+src))
		}

	case service.ChatVisualization:
		if ev.Chart != nil {
			label := fmt.Sprintf("  📊 %s chart (%d data points)", ev.Chart.ChartType, len(ev.Chart.Data))
			cmds = append(cmds, tea.Println(chartStyle.Render(label)))
			for _, pt := range ev.Chart.Data {
				cmds = append(cmds, tea.Println(dimStyle.Render(fmt.Sprintf("     %-24s %.1f", pt.Category, pt.Value))))
			}
		}

	case service.ChatSuggestions:
		cmds = append(cmds, tea.Println(""))
		cmds = append(cmds, tea.Println(followUpStyle.Render("  💡 Suggested questions:")))
		for i, q := range ev.Suggestions {
			cmds = append(cmds, tea.Println(followUpStyle.Render(fmt.Sprintf("     %d. %s", i+1, q))))
		}
	}

	if len(cmds) > 0 {
		return tea.Sequence(cmds...)
	}
	return nil
}

func (m *model) foldItemEvent(ev service.ItemEvent) tea.Cmd {
	before := len(m.items.Items)
	m.items = service.ApplyItem(m.items, ev)

	// Duplicate titles fold to a no-op; only print genuinely new items.
	if len(m.items.Items) > before {
		item := m.items.Items[len(m.items.Items)-1]
		var cmds []tea.Cmd
		cmds = append(cmds, tea.Println("  • "+itemTitleStyle.Render(item.Label())))
		if item.Description != "" {
			cmds = append(cmds, tea.Println(dimStyle.Render("    "+item.Description)))
		}
		if link := item.PrimaryLink(); link != "" {
			cmds = append(cmds, tea.Println(sourceStyle.Render("    "+link)))
		}
		return tea.Sequence(cmds...)
	}
	return nil
}

func (m *model) foldIdeaEvent(ev service.IdeaEvent) tea.Cmd {
	m.idea = service.ApplyIdea(m.idea, ev)

	var cmds []tea.Cmd
	switch ev.Kind {
	case service.IdeaPressReleaseStart:
		cmds = append(cmds, tea.Println(sectionHeaderStyle.Render("  📰 Press Release")))
	case service.IdeaPressRelease, service.IdeaSocial:
		m.printLines(ev.Content, &cmds)
	case service.IdeaPressReleaseEnd, service.IdeaSocialEnd:
		cmds = append(cmds, m.flushLineBuffer()...)
	case service.IdeaSocialStart:
		cmds = append(cmds, tea.Println(sectionHeaderStyle.Render("  📣 Social Media")))
	case service.IdeaReviewsEnd:
		cmds = append(cmds, tea.Println(sectionHeaderStyle.Render("  ⭐ Customer Reviews")))
		for _, review := range m.idea.Reviews {
			cmds = append(cmds, tea.Println("    “"+review+"”"))
		}
	}

	if len(cmds) > 0 {
		return tea.Sequence(cmds...)
	}
	return nil
}

func (m *model) foldProductEvent(ev service.ProductEvent) tea.Cmd {
	before := m.product
	m.product = service.ApplyProduct(m.product, ev)

	var cmds []tea.Cmd
	switch ev.Kind {
	case service.ProductSectionStart:
		cmds = append(cmds, tea.Println(sectionHeaderStyle.Render("  ▸ "+ev.Section)))
	case service.ProductContent:
		m.printLines(ev.Content, &cmds)
	case service.ProductSectionEnd:
		cmds = append(cmds, m.flushLineBuffer()...)
	case service.ProductFull:
		// Cached details: the full payload is the only delivery, so
		// sections never opened by a section_start print here.
		for _, s := range m.product.Sections {
			if _, streamed := before.Section(s.Name); !streamed {
				cmds = append(cmds, tea.Println(sectionHeaderStyle.Render("  ▸ "+s.Name)))
				m.printLines(s.Text+"\n", &cmds)
			}
		}
	}

	if len(cmds) > 0 {
		return tea.Sequence(cmds...)
	}
	return nil
}

func (m *model) renderStreamSummary() []tea.Cmd {
	var cmds []tea.Cmd
	switch m.kind {
	case streamChat:
		cmds = append(cmds, tea.Println(""))
		cmds = append(cmds, tea.Println(successMsgStyle.Render("  ✓ Answer complete")))
	case streamItems:
		cmds = append(cmds, tea.Println(""))
		cmds = append(cmds, tea.Println(successMsgStyle.Render(fmt.Sprintf("  ✓ %d items", len(m.items.Items)))))
	case streamIdeaDetail, streamProductDetail:
		cmds = append(cmds, tea.Println(""))
		cmds = append(cmds, tea.Println(successMsgStyle.Render("  ✓ Done")))
	}
	return cmds
}

// beginRequest resets per-request stream state and starts the
// lifecycle for a new request, returning its token.
func (m *model) beginRequest(kind streamKind) uint64 {
	m.kind = kind
	m.mode = modeStreaming
	m.chat = service.ChatState{}
	m.items = service.ItemList{}
	m.idea = service.IdeaDetail{}
	m.product = service.ProductDetail{}
	m.lineBuffer = ""
	return m.tracker.Begin()
}
