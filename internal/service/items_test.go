package service

import (
	"errors"
	"testing"
)

func TestParseItemEvent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		typ      string
		wantKind ItemEventKind
		wantOK   bool
		wantKey  string
	}{
		{
			name:     "idea item by title",
			raw:      `{"title": "Solar Charger", "description": "Charges in the sun"}`,
			wantKind: ItemAdd,
			wantOK:   true,
			wantKey:  "Solar Charger",
		},
		{
			name:     "catalog product by display name",
			raw:      `{"name": "solar-charger", "display_name": "Solar Charger", "description": "d"}`,
			wantKind: ItemAdd,
			wantOK:   true,
			wantKey:  "Solar Charger",
		},
		{
			name:     "stop sentinel",
			raw:      `{"type": "stop"}`,
			typ:      "stop",
			wantKind: ItemStop,
			wantOK:   true,
		},
		{
			name:   "typed non-stop frame skipped",
			raw:    `{"type": "progress"}`,
			typ:    "progress",
			wantOK: false,
		},
		{
			name:   "keyless item skipped",
			raw:    `{"description": "no identity"}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, err := ParseItemEvent(env(tt.typ, tt.raw))
			if err != nil {
				t.Fatalf("ParseItemEvent() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", ev.Kind, tt.wantKind)
			}
			if tt.wantKey != "" && ev.Item.Key() != tt.wantKey {
				t.Errorf("key = %q, want %q", ev.Item.Key(), tt.wantKey)
			}
		})
	}
}

func TestParseItemEventError(t *testing.T) {
	_, _, err := ParseItemEvent(env("", `{"error": "generation failed"}`))
	var perr *ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ProtocolError", err)
	}
}

func TestApplyItemDeduplicates(t *testing.T) {
	var l ItemList

	add := func(title string) {
		l = ApplyItem(l, ItemEvent{Kind: ItemAdd, Item: Item{Title: title, Description: "d"}})
	}

	add("Solar Charger")
	add("Wind Lamp")
	add("Solar Charger") // duplicate folds to a no-op
	l = ApplyItem(l, ItemEvent{Kind: ItemStop})

	if len(l.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(l.Items))
	}
	if l.Items[0].Title != "Solar Charger" || l.Items[1].Title != "Wind Lamp" {
		t.Errorf("order not preserved: %v", l.Items)
	}
	if !l.Done {
		t.Error("Done = false after stop")
	}
}

func TestApplyItemPure(t *testing.T) {
	base := ApplyItem(ItemList{}, ItemEvent{Kind: ItemAdd, Item: Item{Title: "a"}})
	snapshot := len(base.Items)

	_ = ApplyItem(base, ItemEvent{Kind: ItemAdd, Item: Item{Title: "b"}})
	_ = ApplyItem(base, ItemEvent{Kind: ItemAdd, Item: Item{Title: "c"}})

	if len(base.Items) != snapshot {
		t.Errorf("earlier state mutated: %d items", len(base.Items))
	}
}

func TestItemPrimaryLink(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Link: "l", ExternalLink: "e", InternalLink: "i"}, "l"},
		{Item{ExternalLink: "e", InternalLink: "i"}, "e"},
		{Item{InternalLink: "i"}, "i"},
		{Item{}, ""},
	}
	for _, tt := range tests {
		if got := tt.item.PrimaryLink(); got != tt.want {
			t.Errorf("PrimaryLink(%+v) = %q, want %q", tt.item, got, tt.want)
		}
	}
}

func TestItemKeyPrecedence(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Title: "t", DisplayName: "d", Name: "n"}, "t"},
		{Item{DisplayName: "d", Name: "n"}, "d"},
		{Item{Name: "n"}, "n"},
		{Item{}, ""},
	}
	for _, tt := range tests {
		if got := tt.item.Key(); got != tt.want {
			t.Errorf("Key(%+v) = %q, want %q", tt.item, got, tt.want)
		}
	}
}
