package tui

import (
	"fmt"
	"strconv"
	"strings"

	"showcase-cli/internal/api"
	"showcase-cli/internal/config"
	"showcase-cli/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

// ─── Async result messages ──────────────────────────────────────────────────

type connectResultMsg struct {
	frontendURL string
	appCfg      *api.AppConfig
	err         error
}

type suggestionsMsg struct {
	questions []string
	err       error
}

type tabsMsg struct {
	tabs []api.Tab
	err  error
}

// ─── Input dispatch ─────────────────────────────────────────────────────────

func (m model) dispatchInput(value string) (tea.Model, tea.Cmd) {
	if !strings.HasPrefix(value, "/") {
		return m.startChat(value)
	}

	parts := strings.Fields(value)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/help":
		return m, tea.Println(renderHelp())

	case "/quit", "/exit":
		return m, tea.Quit

	case "/clear":
		m.history = nil
		return m, tea.Sequence(
			tea.ClearScreen,
			tea.Println(renderWelcome(m.version, m.cfg, m.width)),
		)

	case "/config":
		return m, tea.Println(renderConfig(m.cfg, m.profile))

	case "/connect":
		if len(args) < 1 {
			return m, tea.Println(errorMsgStyle.Render("  ✗ Usage: /connect <frontend-url>"))
		}
		return m.startConnect(args[0])

	case "/catalog":
		if cmd, ok := m.requireClient(); !ok {
			return m, cmd
		}
		return m.startCatalog()

	case "/ideate":
		if cmd, ok := m.requireClient(); !ok {
			return m, cmd
		}
		if len(args) < 1 {
			return m, tea.Println(errorMsgStyle.Render("  ✗ Usage: /ideate <prompt>"))
		}
		return m.startIdeate(strings.Join(args, " "))

	case "/idea":
		if cmd, ok := m.requireClient(); !ok {
			return m, cmd
		}
		if len(args) < 1 {
			return m, tea.Println(errorMsgStyle.Render("  ✗ Usage: /idea <title>"))
		}
		return m.startIdeaDetail(strings.Join(args, " "))

	case "/product":
		if cmd, ok := m.requireClient(); !ok {
			return m, cmd
		}
		if len(args) < 1 {
			return m, tea.Println(errorMsgStyle.Render("  ✗ Usage: /product <name>"))
		}
		return m.startProductDetail(strings.Join(args, " "))

	case "/tab":
		if cmd, ok := m.requireClient(); !ok {
			return m, cmd
		}
		if len(args) < 1 {
			return m, tea.Println(errorMsgStyle.Render("  ✗ Usage: /tab <prompt> [item-type]"))
		}
		itemType := "idea"
		prompt := strings.Join(args, " ")
		if len(args) > 1 {
			itemType = args[len(args)-1]
			prompt = strings.Join(args[:len(args)-1], " ")
		}
		return m.startTabItems(prompt, itemType)

	case "/tabs":
		if cmd, ok := m.requireClient(); !ok {
			return m, cmd
		}
		return m, fetchTabs(m.client)

	case "/suggestions":
		if cmd, ok := m.requireClient(); !ok {
			return m, cmd
		}
		return m, fetchSuggestions(m.client)

	case "/set":
		if len(args) < 2 {
			return m, tea.Println(errorMsgStyle.Render("  ✗ Usage: /set <key> <value>   (keys: limit, tab, images)"))
		}
		return m.setOption(args[0], args[1])

	default:
		return m, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ Unknown command %q. Try /help", cmd)))
	}
}

func (m model) requireClient() (tea.Cmd, bool) {
	if m.client == nil {
		return tea.Println(errorMsgStyle.Render("  ✗ Not connected. Run: /connect <frontend-url>")), false
	}
	return nil, true
}

// ─── Stream starters ────────────────────────────────────────────────────────

func (m model) startChat(question string) (tea.Model, tea.Cmd) {
	if cmd, ok := m.requireClient(); !ok {
		return m, cmd
	}
	m.question = question
	token := m.beginRequest(streamChat)

	req := api.ChatRequest{
		Question:    question,
		ChatHistory: m.history,
	}

	return m, tea.Batch(
		tea.Println(promptSymbol.Render("  ❯ ")+itemTitleStyle.Render(question)),
		tea.Println(""),
		beginChatStream(m.client, req, token),
		m.spinner.Tick,
	)
}

func (m model) startCatalog() (tea.Model, tea.Cmd) {
	token := m.beginRequest(streamItems)
	limit := m.cfg.Limit()

	return m, tea.Batch(
		tea.Println(sectionHeaderStyle.Render("  🛍 Product Catalog")),
		beginItemStream(func(cb func(service.ItemEvent)) error {
			return m.client.ProductStream(limit, cb)
		}, token),
		m.spinner.Tick,
	)
}

func (m model) startIdeate(prompt string) (tea.Model, tea.Cmd) {
	token := m.beginRequest(streamItems)
	limit := m.cfg.Limit()

	return m, tea.Batch(
		tea.Println(sectionHeaderStyle.Render("  💡 Ideas: ")+itemTitleStyle.Render(prompt)),
		beginItemStream(func(cb func(service.ItemEvent)) error {
			return m.client.IdeaStream(prompt, limit, cb)
		}, token),
		m.spinner.Tick,
	)
}

func (m model) startTabItems(prompt, itemType string) (tea.Model, tea.Cmd) {
	token := m.beginRequest(streamItems)
	limit := m.cfg.Limit()
	images := m.cfg.GenerateImages

	return m, tea.Batch(
		tea.Println(sectionHeaderStyle.Render("  ✨ "+itemType+": ")+itemTitleStyle.Render(prompt)),
		beginItemStream(func(cb func(service.ItemEvent)) error {
			return m.client.SiteItemStream(prompt, itemType, limit, images, cb)
		}, token),
		m.spinner.Tick,
	)
}

func (m model) startIdeaDetail(title string) (tea.Model, tea.Cmd) {
	token := m.beginRequest(streamIdeaDetail)

	return m, tea.Batch(
		tea.Println(sectionHeaderStyle.Render("  💡 ")+itemTitleStyle.Render(title)),
		beginIdeaDetailStream(m.client, title, token),
		m.spinner.Tick,
	)
}

func (m model) startProductDetail(name string) (tea.Model, tea.Cmd) {
	token := m.beginRequest(streamProductDetail)

	return m, tea.Batch(
		tea.Println(sectionHeaderStyle.Render("  🛍 ")+itemTitleStyle.Render(name)),
		beginProductDetailStream(m.client, name, token),
		m.spinner.Tick,
	)
}

// ─── One-shot async commands ────────────────────────────────────────────────

func (m model) startConnect(frontendURL string) (tea.Model, tea.Cmd) {
	return m, tea.Batch(
		tea.Println(dimStyle.Render("  Connecting to "+frontendURL+"...")),
		func() tea.Msg {
			appCfg, err := api.FetchAppConfig(frontendURL)
			return connectResultMsg{frontendURL: frontendURL, appCfg: appCfg, err: err}
		},
	)
}

func fetchSuggestions(client api.ShowcaseAPI) tea.Cmd {
	return func() tea.Msg {
		qs, err := client.SuggestedQuestions()
		return suggestionsMsg{questions: qs, err: err}
	}
}

func fetchTabs(client api.ShowcaseAPI) tea.Cmd {
	return func() tea.Msg {
		tabs, err := client.ListTabs()
		return tabsMsg{tabs: tabs, err: err}
	}
}

// ─── Async result handlers ──────────────────────────────────────────────────

func (m model) handleConnectResult(msg connectResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ %v", msg.err)))
	}

	if m.cfg == nil {
		m.cfg = &config.Config{Profile: m.profile, ItemLimit: config.DefaultItemLimit}
	}
	m.cfg.Server = msg.frontendURL
	m.cfg.APIURL = msg.appCfg.APIURL
	m.cfg.CustomerName = msg.appCfg.CustomerName

	if err := m.cfg.Save(); err != nil {
		return m, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ saving config: %v", err)))
	}

	m.client = api.NewClient(m.cfg)

	name := m.cfg.CustomerName
	if name == "" {
		name = m.cfg.APIURL
	}
	return m, tea.Println(successMsgStyle.Render("  ✓ Connected to " + name))
}

func (m model) handleSuggestions(msg suggestionsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ %v", msg.err)))
	}

	var cmds []tea.Cmd
	cmds = append(cmds, tea.Println(followUpStyle.Render("  💡 Suggested questions:")))
	for i, q := range msg.questions {
		cmds = append(cmds, tea.Println(fmt.Sprintf("     %d. %s", i+1, q)))
	}
	return m, tea.Sequence(cmds...)
}

func (m model) handleTabs(msg tabsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ %v", msg.err)))
	}

	var cmds []tea.Cmd
	cmds = append(cmds, tea.Println(sectionHeaderStyle.Render("  Ideator Tabs")))
	for _, t := range msg.tabs {
		line := fmt.Sprintf("  • %s %s", itemTitleStyle.Render(t.Label), dimStyle.Render("("+t.ItemType+")"))
		cmds = append(cmds, tea.Println(line))
		if t.Prompt != "" {
			cmds = append(cmds, tea.Println(dimStyle.Render("    "+t.Prompt)))
		}
	}
	if len(msg.tabs) == 0 {
		cmds = append(cmds, tea.Println(dimStyle.Render("  (no tabs configured)")))
	}
	return m, tea.Sequence(cmds...)
}

// ─── Settings ───────────────────────────────────────────────────────────────

func (m model) setOption(key, value string) (tea.Model, tea.Cmd) {
	if m.cfg == nil {
		m.cfg = &config.Config{Profile: m.profile}
	}

	switch strings.ToLower(key) {
	case "limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return m, tea.Println(errorMsgStyle.Render("  ✗ limit must be a positive number"))
		}
		m.cfg.ItemLimit = n

	case "tab":
		m.cfg.DefaultTab = value

	case "images":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return m, tea.Println(errorMsgStyle.Render("  ✗ images must be true or false"))
		}
		m.cfg.GenerateImages = on

	default:
		return m, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ Unknown setting %q (keys: limit, tab, images)", key)))
	}

	if err := m.cfg.Save(); err != nil {
		return m, tea.Println(errorMsgStyle.Render(fmt.Sprintf("  ✗ saving config: %v", err)))
	}
	return m, tea.Println(successMsgStyle.Render(fmt.Sprintf("  ✓ %s = %s", key, value)))
}
