package service

import (
	"testing"
)

func TestParseProductEvent(t *testing.T) {
	tests := []struct {
		name        string
		typ         string
		raw         string
		wantKind    ProductEventKind
		wantOK      bool
		wantSection string
	}{
		{
			name:        "section start",
			typ:         "section_start",
			raw:         `{"type": "section_start", "section": "overview"}`,
			wantKind:    ProductSectionStart,
			wantOK:      true,
			wantSection: "overview",
		},
		{
			name:        "content fragment",
			typ:         "content",
			raw:         `{"type": "content", "section": "overview", "content": "A rugged charger."}`,
			wantKind:    ProductContent,
			wantOK:      true,
			wantSection: "overview",
		},
		{
			name:        "section end",
			typ:         "section_end",
			raw:         `{"type": "section_end", "section": "overview"}`,
			wantKind:    ProductSectionEnd,
			wantOK:      true,
			wantSection: "overview",
		},
		{
			name:     "untyped full payload",
			typ:      "",
			raw:      `{"overview": "A rugged charger.", "pricing": "$49"}`,
			wantKind: ProductFull,
			wantOK:   true,
		},
		{
			name:     "stop",
			typ:      "stop",
			raw:      `{"type": "stop"}`,
			wantKind: ProductStop,
			wantOK:   true,
		},
		{
			name:   "section start without a section",
			typ:    "section_start",
			raw:    `{"type": "section_start"}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, err := ParseProductEvent(env(tt.typ, tt.raw))
			if err != nil {
				t.Fatalf("ParseProductEvent() error = %v", err)
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
			if ev.Section != tt.wantSection {
				t.Errorf("section = %q, want %q", ev.Section, tt.wantSection)
			}
		})
	}
}

func TestApplyProductSections(t *testing.T) {
	var d ProductDetail

	d = ApplyProduct(d, ProductEvent{Kind: ProductSectionStart, Section: "overview"})
	d = ApplyProduct(d, ProductEvent{Kind: ProductContent, Section: "overview", Content: "A rugged "})
	d = ApplyProduct(d, ProductEvent{Kind: ProductContent, Section: "overview", Content: "charger."})
	d = ApplyProduct(d, ProductEvent{Kind: ProductSectionEnd, Section: "overview"})

	s, ok := d.Section("overview")
	if !ok {
		t.Fatal("overview section missing")
	}
	if s.Text != "A rugged charger." {
		t.Errorf("Text = %q", s.Text)
	}
	if !s.Complete {
		t.Error("Complete = false after section_end")
	}
}

func TestApplyProductImplicitSection(t *testing.T) {
	// Content arriving before its section_start opens the section.
	var d ProductDetail
	d = ApplyProduct(d, ProductEvent{Kind: ProductContent, Section: "features", Content: "Waterproof."})

	s, ok := d.Section("features")
	if !ok {
		t.Fatal("features section missing")
	}
	if s.Text != "Waterproof." {
		t.Errorf("Text = %q", s.Text)
	}
}

func TestApplyProductFullOverwrites(t *testing.T) {
	var d ProductDetail
	d = ApplyProduct(d, ProductEvent{Kind: ProductSectionStart, Section: "overview"})
	d = ApplyProduct(d, ProductEvent{Kind: ProductContent, Section: "overview", Content: "streamed draft"})

	d = ApplyProduct(d, ProductEvent{
		Kind:     ProductFull,
		Sections: map[string]string{"overview": "final text"},
	})
	d = ApplyProduct(d, ProductEvent{Kind: ProductStop})

	s, _ := d.Section("overview")
	if s.Text != "final text" {
		t.Errorf("Text = %q, want final payload to win", s.Text)
	}
	if !s.Complete {
		t.Error("Complete = false after full payload")
	}
	if !d.Done {
		t.Error("Done = false after stop")
	}
}

func TestApplyProductFullOnly(t *testing.T) {
	// Previously-generated details are served as one full object and a
	// stop, with no section markers at all. Every key must surface.
	var d ProductDetail
	d = ApplyProduct(d, ProductEvent{
		Kind: ProductFull,
		Sections: map[string]string{
			"pricing":  "$49",
			"overview": "cached overview",
			"features": "Waterproof.",
		},
	})
	d = ApplyProduct(d, ProductEvent{Kind: ProductStop})

	if len(d.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(d.Sections))
	}
	// Display order, not map order.
	wantOrder := []string{"overview", "features", "pricing"}
	for i, name := range wantOrder {
		if d.Sections[i].Name != name {
			t.Errorf("section %d = %q, want %q", i, d.Sections[i].Name, name)
		}
		if !d.Sections[i].Complete {
			t.Errorf("section %q not complete", name)
		}
	}
	if s, _ := d.Section("overview"); s.Text != "cached overview" {
		t.Errorf("overview = %q", s.Text)
	}
}

func TestApplyProductFullMixed(t *testing.T) {
	// One section streamed, the rest only in the full payload: the
	// streamed one keeps its position and gets the final text, new
	// ones append after it.
	var d ProductDetail
	d = ApplyProduct(d, ProductEvent{Kind: ProductSectionStart, Section: "pricing"})
	d = ApplyProduct(d, ProductEvent{Kind: ProductContent, Section: "pricing", Content: "draft"})
	d = ApplyProduct(d, ProductEvent{
		Kind:     ProductFull,
		Sections: map[string]string{"pricing": "$49", "overview": "cached overview"},
	})

	if len(d.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(d.Sections))
	}
	if d.Sections[0].Name != "pricing" || d.Sections[0].Text != "$49" {
		t.Errorf("section 0 = %+v, want streamed pricing overwritten", d.Sections[0])
	}
	if d.Sections[1].Name != "overview" || d.Sections[1].Text != "cached overview" {
		t.Errorf("section 1 = %+v, want appended overview", d.Sections[1])
	}
}

func TestApplyProductPure(t *testing.T) {
	base := ApplyProduct(ProductDetail{}, ProductEvent{Kind: ProductContent, Section: "overview", Content: "a"})

	_ = ApplyProduct(base, ProductEvent{Kind: ProductContent, Section: "overview", Content: "b"})

	s, _ := base.Section("overview")
	if s.Text != "a" {
		t.Errorf("earlier state mutated: Text = %q", s.Text)
	}
}
