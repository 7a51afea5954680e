package service

import (
	"encoding/json"

	"showcase-cli/internal/sse"
)

// ─── Idea detail stream ─────────────────────────────────────────────────────
//
// The ideator's detail endpoint streams three named phases. Press
// release and social media arrive as incremental fragments bracketed by
// start/end markers; customer reviews arrive as whole-list replacements.

// IdeaEventKind identifies an idea-detail stream event.
type IdeaEventKind int

const (
	IdeaPressReleaseStart IdeaEventKind = iota
	IdeaPressRelease
	IdeaPressReleaseEnd
	IdeaSocialStart
	IdeaSocial
	IdeaSocialEnd
	IdeaReviewsStart
	IdeaReviews
	IdeaReviewsEnd
	IdeaStop
)

type IdeaEvent struct {
	Kind    IdeaEventKind
	Content string   // fragment for press release / social media
	Reviews []string // whole list for customer reviews
}

var ideaKinds = map[string]IdeaEventKind{
	"press_release_start":    IdeaPressReleaseStart,
	"press_release":          IdeaPressRelease,
	"press_release_end":      IdeaPressReleaseEnd,
	"social_media_start":     IdeaSocialStart,
	"social_media":           IdeaSocial,
	"social_media_end":       IdeaSocialEnd,
	"customer_reviews_start": IdeaReviewsStart,
	"customer_reviews":       IdeaReviews,
	"customer_reviews_end":   IdeaReviewsEnd,
	"stop":                   IdeaStop,
}

// ParseIdeaEvent classifies an idea-detail envelope. ok is false for
// frames carrying no event; an error frame returns a *ProtocolError.
func ParseIdeaEvent(env sse.Envelope) (ev IdeaEvent, ok bool, err error) {
	if perr := errorFrom(env.Raw); perr != nil {
		return IdeaEvent{}, false, perr
	}

	kind, known := ideaKinds[env.Type]
	if !known {
		return IdeaEvent{}, false, nil
	}

	switch kind {
	case IdeaPressRelease, IdeaSocial:
		var p struct {
			Content string `json:"content"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil {
			return IdeaEvent{}, false, nil
		}
		return IdeaEvent{Kind: kind, Content: p.Content}, true, nil

	case IdeaReviews:
		var p struct {
			Content []string `json:"content"`
		}
		if uerr := json.Unmarshal(env.Raw, &p); uerr != nil {
			return IdeaEvent{}, false, nil
		}
		return IdeaEvent{Kind: kind, Reviews: p.Content}, true, nil
	}

	return IdeaEvent{Kind: kind}, true, nil
}

// ─── Idea detail fold ───────────────────────────────────────────────────────

// IdeaDetail accumulates one idea's generated detail.
type IdeaDetail struct {
	PressRelease string
	SocialMedia  string
	Reviews      []string

	PressReleaseLoading bool
	SocialLoading       bool
	ReviewsLoading      bool
	Done                bool
}

// ApplyIdea folds one event into the detail. Pure.
func ApplyIdea(d IdeaDetail, ev IdeaEvent) IdeaDetail {
	switch ev.Kind {
	case IdeaPressReleaseStart:
		d.PressReleaseLoading = true
	case IdeaPressRelease:
		d.PressRelease += ev.Content
	case IdeaPressReleaseEnd:
		d.PressReleaseLoading = false

	case IdeaSocialStart:
		d.SocialLoading = true
	case IdeaSocial:
		d.SocialMedia += ev.Content
	case IdeaSocialEnd:
		d.SocialLoading = false

	case IdeaReviewsStart:
		d.ReviewsLoading = true
	case IdeaReviews:
		// Whole-list replace, not incremental append.
		d.Reviews = append([]string(nil), ev.Reviews...)
	case IdeaReviewsEnd:
		d.ReviewsLoading = false

	case IdeaStop:
		d.PressReleaseLoading = false
		d.SocialLoading = false
		d.ReviewsLoading = false
		d.Done = true
	}
	return d
}
