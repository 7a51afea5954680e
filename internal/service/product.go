package service

import (
	"encoding/json"
	"sort"

	"showcase-cli/internal/sse"
)

// ─── Product detail stream ──────────────────────────────────────────────────
//
// /api/product-details streams generated sections (overview, features,
// benefits, pricing): section_start, content fragments tagged with the
// section name, section_end, then a full detail object with the final
// text per section, then stop.

// ProductEventKind identifies a product-detail stream event.
type ProductEventKind int

const (
	ProductSectionStart ProductEventKind = iota
	ProductContent
	ProductSectionEnd
	ProductFull
	ProductStop
)

type ProductEvent struct {
	Kind     ProductEventKind
	Section  string
	Content  string
	Sections map[string]string // ProductFull only
}

// ParseProductEvent classifies a product-detail envelope.
func ParseProductEvent(env sse.Envelope) (ev ProductEvent, ok bool, err error) {
	if perr := errorFrom(env.Raw); perr != nil {
		return ProductEvent{}, false, perr
	}

	switch env.Type {
	case "section_start", "section_end":
		var p struct {
			Section string `json:"section"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil || p.Section == "" {
			return ProductEvent{}, false, nil
		}
		kind := ProductSectionStart
		if env.Type == "section_end" {
			kind = ProductSectionEnd
		}
		return ProductEvent{Kind: kind, Section: p.Section}, true, nil

	case "content":
		var p struct {
			Section string `json:"section"`
			Content string `json:"content"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil {
			return ProductEvent{}, false, nil
		}
		return ProductEvent{Kind: ProductContent, Section: p.Section, Content: p.Content}, true, nil

	case "stop":
		return ProductEvent{Kind: ProductStop}, true, nil

	case "":
		// The final authoritative detail object has no discriminant.
		var sections map[string]string
		if uerr := json.Unmarshal(env.Raw, &sections); uerr != nil || len(sections) == 0 {
			return ProductEvent{}, false, nil
		}
		return ProductEvent{Kind: ProductFull, Sections: sections}, true, nil
	}

	return ProductEvent{}, false, nil
}

// ─── Product detail fold ────────────────────────────────────────────────────

// ProductSection is one generated section in stream order.
type ProductSection struct {
	Name     string
	Text     string
	Complete bool
}

// ProductDetail accumulates one product's generated detail page.
type ProductDetail struct {
	Sections []ProductSection
	Done     bool
}

// Section returns the section with the given name, if present.
func (d ProductDetail) Section(name string) (ProductSection, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return ProductSection{}, false
}

// ApplyProduct folds one event into the detail. Pure: sections are
// copied before modification.
func ApplyProduct(d ProductDetail, ev ProductEvent) ProductDetail {
	clone := func() []ProductSection {
		out := make([]ProductSection, len(d.Sections))
		copy(out, d.Sections)
		return out
	}

	switch ev.Kind {
	case ProductSectionStart:
		if _, exists := d.Section(ev.Section); exists {
			return d
		}
		d.Sections = append(clone(), ProductSection{Name: ev.Section})

	case ProductContent:
		sections := clone()
		found := false
		for i := range sections {
			if sections[i].Name == ev.Section {
				sections[i].Text += ev.Content
				found = true
				break
			}
		}
		if !found {
			// content before section_start: open the section implicitly
			sections = append(sections, ProductSection{Name: ev.Section, Text: ev.Content})
		}
		d.Sections = sections

	case ProductSectionEnd:
		sections := clone()
		for i := range sections {
			if sections[i].Name == ev.Section {
				sections[i].Complete = true
				break
			}
		}
		d.Sections = sections

	case ProductFull:
		// Final object wins over whatever was accumulated. Cached
		// details arrive as a lone full object with no section
		// markers, so keys never streamed are appended too.
		sections := clone()
		seen := make(map[string]bool, len(sections))
		for i := range sections {
			seen[sections[i].Name] = true
			if text, okk := ev.Sections[sections[i].Name]; okk {
				sections[i].Text = text
				sections[i].Complete = true
			}
		}
		for _, name := range sortedSectionNames(ev.Sections) {
			if !seen[name] {
				sections = append(sections, ProductSection{Name: name, Text: ev.Sections[name], Complete: true})
			}
		}
		d.Sections = sections

	case ProductStop:
		d.Done = true
	}
	return d
}

// sectionRank orders the backend's generated sections for display;
// unknown names sort after the known set.
var sectionRank = map[string]int{
	"overview": 0,
	"features": 1,
	"benefits": 2,
	"pricing":  3,
}

func sortedSectionNames(sections map[string]string) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iok := sectionRank[names[i]]
		rj, jok := sectionRank[names[j]]
		if iok != jok {
			return iok
		}
		if iok && jok && ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}
