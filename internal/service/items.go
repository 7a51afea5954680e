package service

import (
	"encoding/json"

	"showcase-cli/internal/sse"
)

// ─── Item streams ───────────────────────────────────────────────────────────
//
// The catalog, site-item, and idea endpoints share one protocol: every
// frame is itself one item (no discriminant) until a `stop` sentinel.

// Item is one generated card: a catalog product, a site item, or a
// product idea. Products use name/display_name, generated items use
// title; Key unifies the two.
type Item struct {
	Title        string `json:"title,omitempty"`
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"display_name,omitempty"`
	Description  string `json:"description"`
	Icon         string `json:"icon,omitempty"`
	Image        string `json:"image,omitempty"` // base64 JPEG when image generation is on
	Link         string `json:"link,omitempty"`
	ExternalLink string `json:"external_link,omitempty"`
	InternalLink string `json:"internal_link,omitempty"`
}

// Key is the uniqueness field used for duplicate rejection.
func (i Item) Key() string {
	if i.Title != "" {
		return i.Title
	}
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Name
}

// Label is the display name for rendering.
func (i Item) Label() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Title
}

// PrimaryLink picks the link to show for a card: generated items carry
// link, catalog products carry external_link or internal_link.
func (i Item) PrimaryLink() string {
	if i.Link != "" {
		return i.Link
	}
	if i.ExternalLink != "" {
		return i.ExternalLink
	}
	return i.InternalLink
}

// ItemEventKind identifies an item stream event.
type ItemEventKind int

const (
	ItemAdd  ItemEventKind = iota // one item card
	ItemStop                      // list complete
)

type ItemEvent struct {
	Kind ItemEventKind
	Item Item
}

// ParseItemEvent classifies an item-list envelope. ok is false for
// frames carrying no event; an error frame returns a *ProtocolError.
func ParseItemEvent(env sse.Envelope) (ev ItemEvent, ok bool, err error) {
	if perr := errorFrom(env.Raw); perr != nil {
		return ItemEvent{}, false, perr
	}
	if env.Type == "stop" {
		return ItemEvent{Kind: ItemStop}, true, nil
	}
	if env.Type != "" {
		// Typed frames other than stop don't occur on item streams.
		return ItemEvent{}, false, nil
	}

	var item Item
	if uerr := json.Unmarshal(env.Raw, &item); uerr != nil {
		return ItemEvent{}, false, nil
	}
	if item.Key() == "" {
		return ItemEvent{}, false, nil
	}
	return ItemEvent{Kind: ItemAdd, Item: item}, true, nil
}

// ─── Item fold ──────────────────────────────────────────────────────────────

// ItemList accumulates one list response.
type ItemList struct {
	Items []Item
	Done  bool
}

// Has reports whether an item with the same key was already folded in.
func (l ItemList) Has(key string) bool {
	for _, it := range l.Items {
		if it.Key() == key {
			return true
		}
	}
	return false
}

// ApplyItem folds one event into the list. Appending an already-seen
// key is a no-op, so replaying a duplicate frame changes nothing.
func ApplyItem(l ItemList, ev ItemEvent) ItemList {
	switch ev.Kind {
	case ItemAdd:
		if l.Has(ev.Item.Key()) {
			return l
		}
		items := make([]Item, len(l.Items), len(l.Items)+1)
		copy(items, l.Items)
		l.Items = append(items, ev.Item)
	case ItemStop:
		l.Done = true
	}
	return l
}
