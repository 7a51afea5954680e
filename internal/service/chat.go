package service

import (
	"encoding/json"

	"showcase-cli/internal/sse"
)

// ─── Chat events ────────────────────────────────────────────────────────────

// ChatEventKind identifies a chat stream event.
type ChatEventKind int

const (
	ChatContent       ChatEventKind = iota // text fragment to append
	ChatMetadata                           // source links for the answer
	ChatVisualization                      // one chart spec
	ChatSuggestions                        // replacement follow-up list
	ChatStop                               // answer complete
)

// ChartSpec is the visualization payload: a chart the backend derived
// from the product table for "compare/visualize" style questions.
type ChartSpec struct {
	ChartType string       `json:"chart_type"`
	Title     string       `json:"title,omitempty"`
	Data      []ChartPoint `json:"data"`
}

type ChartPoint struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// ChatEvent is one classified chat frame.
type ChatEvent struct {
	Kind        ChatEventKind
	Content     string
	Sources     []string
	Chart       *ChartSpec
	Suggestions []string
}

// ParseChatEvent classifies a chat envelope. ok is false for frames
// that carry no event (unknown discriminants). An error frame returns
// a *ProtocolError.
func ParseChatEvent(env sse.Envelope) (ev ChatEvent, ok bool, err error) {
	if perr := errorFrom(env.Raw); perr != nil {
		return ChatEvent{}, false, perr
	}

	switch env.Type {
	case "content":
		var p struct {
			Content string `json:"content"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil {
			return ChatEvent{}, false, nil
		}
		return ChatEvent{Kind: ChatContent, Content: p.Content}, true, nil

	case "metadata":
		var p struct {
			Sources []string `json:"sources"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil {
			return ChatEvent{}, false, nil
		}
		return ChatEvent{Kind: ChatMetadata, Sources: p.Sources}, true, nil

	case "visualization":
		var p struct {
			Content ChartSpec `json:"content"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil {
			return ChatEvent{}, false, nil
		}
		return ChatEvent{Kind: ChatVisualization, Chart: &p.Content}, true, nil

	case "suggested_questions":
		var p struct {
			Questions []string `json:"questions"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil {
			return ChatEvent{}, false, nil
		}
		return ChatEvent{Kind: ChatSuggestions, Suggestions: p.Questions}, true, nil

	case "stop":
		return ChatEvent{Kind: ChatStop}, true, nil
	}

	return ChatEvent{}, false, nil
}

// ─── Chat fold ──────────────────────────────────────────────────────────────

// ChatState is the accumulated result of one chat answer.
type ChatState struct {
	Answer      string
	Sources     []string
	Chart       *ChartSpec
	Suggestions []string
	Done        bool
}

// ApplyChat folds one event into the state. Pure: the input state is
// never mutated, so a recorded event sequence can be replayed.
func ApplyChat(s ChatState, ev ChatEvent) ChatState {
	switch ev.Kind {
	case ChatContent:
		s.Answer += ev.Content
	case ChatMetadata:
		s.Sources = append([]string(nil), ev.Sources...)
	case ChatVisualization:
		s.Chart = ev.Chart
	case ChatSuggestions:
		s.Suggestions = append([]string(nil), ev.Suggestions...)
	case ChatStop:
		s.Done = true
	}
	return s
}
