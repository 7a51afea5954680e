package tui

import (
	"showcase-cli/internal/api"
	"showcase-cli/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

// ─── Messages sent from stream goroutines to Bubble Tea ─────────────────────
//
// Every stream message carries the lifecycle token it was started
// with. Update drops any message whose token is no longer current, so
// a superseded stream can keep delivering without touching state.

type chatEventMsg struct {
	token uint64
	ev    service.ChatEvent
}

type itemEventMsg struct {
	token uint64
	ev    service.ItemEvent
}

type ideaEventMsg struct {
	token uint64
	ev    service.IdeaEvent
}

type productEventMsg struct {
	token uint64
	ev    service.ProductEvent
}

type streamDoneMsg struct {
	token uint64
}

type streamErrMsg struct {
	token uint64
	err   error
}

// ─── Stream commands ────────────────────────────────────────────────────────
//
// Each begin* launches the request in a goroutine and bridges the
// client callback onto a channel; waitForStream pulls one message at a
// time so Update can re-arm after each event, exactly one consumer per
// open response.

var activeStreamCh chan tea.Msg

func beginChatStream(client api.ShowcaseAPI, req api.ChatRequest, token uint64) tea.Cmd {
	ch := make(chan tea.Msg, 64)
	activeStreamCh = ch

	go func() {
		defer close(ch)
		err := client.ChatStream(req, func(ev service.ChatEvent) {
			ch <- chatEventMsg{token: token, ev: ev}
		})
		if err != nil {
			ch <- streamErrMsg{token: token, err: err}
			return
		}
		ch <- streamDoneMsg{token: token}
	}()

	return waitForStream(ch)
}

func beginItemStream(run func(cb func(service.ItemEvent)) error, token uint64) tea.Cmd {
	ch := make(chan tea.Msg, 64)
	activeStreamCh = ch

	go func() {
		defer close(ch)
		err := run(func(ev service.ItemEvent) {
			ch <- itemEventMsg{token: token, ev: ev}
		})
		if err != nil {
			ch <- streamErrMsg{token: token, err: err}
			return
		}
		ch <- streamDoneMsg{token: token}
	}()

	return waitForStream(ch)
}

func beginIdeaDetailStream(client api.ShowcaseAPI, title string, token uint64) tea.Cmd {
	ch := make(chan tea.Msg, 64)
	activeStreamCh = ch

	go func() {
		defer close(ch)
		err := client.IdeaDetailStream(title, func(ev service.IdeaEvent) {
			ch <- ideaEventMsg{token: token, ev: ev}
		})
		if err != nil {
			ch <- streamErrMsg{token: token, err: err}
			return
		}
		ch <- streamDoneMsg{token: token}
	}()

	return waitForStream(ch)
}

func beginProductDetailStream(client api.ShowcaseAPI, name string, token uint64) tea.Cmd {
	ch := make(chan tea.Msg, 64)
	activeStreamCh = ch

	go func() {
		defer close(ch)
		err := client.ProductDetailStream(name, func(ev service.ProductEvent) {
			ch <- productEventMsg{token: token, ev: ev}
		})
		if err != nil {
			ch <- streamErrMsg{token: token, err: err}
			return
		}
		ch <- streamDoneMsg{token: token}
	}()

	return waitForStream(ch)
}

// waitForStream reads the next message from the channel.
func waitForStream(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
