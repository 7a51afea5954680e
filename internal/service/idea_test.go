package service

import (
	"testing"
)

func TestParseIdeaEvent(t *testing.T) {
	tests := []struct {
		name        string
		typ         string
		raw         string
		wantKind    IdeaEventKind
		wantOK      bool
		wantContent string
		wantReviews int
	}{
		{
			name:     "press release start",
			typ:      "press_release_start",
			raw:      `{"type": "press_release_start"}`,
			wantKind: IdeaPressReleaseStart,
			wantOK:   true,
		},
		{
			name:        "press release fragment",
			typ:         "press_release",
			raw:         `{"type": "press_release", "content": "FOR IMMEDIATE RELEASE"}`,
			wantKind:    IdeaPressRelease,
			wantOK:      true,
			wantContent: "FOR IMMEDIATE RELEASE",
		},
		{
			name:        "social fragment",
			typ:         "social_media",
			raw:         `{"type": "social_media", "content": "Big news!"}`,
			wantKind:    IdeaSocial,
			wantOK:      true,
			wantContent: "Big news!",
		},
		{
			name:        "reviews whole list",
			typ:         "customer_reviews",
			raw:         `{"type": "customer_reviews", "content": ["Love it", "Would buy again"]}`,
			wantKind:    IdeaReviews,
			wantOK:      true,
			wantReviews: 2,
		},
		{
			name:     "stop",
			typ:      "stop",
			raw:      `{"type": "stop"}`,
			wantKind: IdeaStop,
			wantOK:   true,
		},
		{
			name:   "unknown phase ignored",
			typ:    "pricing_start",
			raw:    `{"type": "pricing_start"}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, err := ParseIdeaEvent(env(tt.typ, tt.raw))
			if err != nil {
				t.Fatalf("ParseIdeaEvent() error = %v", err)
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
			if ev.Content != tt.wantContent {
				t.Errorf("content = %q, want %q", ev.Content, tt.wantContent)
			}
			if len(ev.Reviews) != tt.wantReviews {
				t.Errorf("reviews = %v, want %d entries", ev.Reviews, tt.wantReviews)
			}
		})
	}
}

func TestApplyIdeaPhases(t *testing.T) {
	var d IdeaDetail

	d = ApplyIdea(d, IdeaEvent{Kind: IdeaPressReleaseStart})
	if !d.PressReleaseLoading {
		t.Fatal("PressReleaseLoading = false after start")
	}

	d = ApplyIdea(d, IdeaEvent{Kind: IdeaPressRelease, Content: "FOR IMMEDIATE RELEASE\n"})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaPressRelease, Content: "Solar Charger "})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaPressRelease, Content: "launches today."})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaPressReleaseEnd})

	if d.PressReleaseLoading {
		t.Error("PressReleaseLoading = true after end")
	}
	want := "FOR IMMEDIATE RELEASE\nSolar Charger launches today."
	if d.PressRelease != want {
		t.Errorf("PressRelease = %q, want %q", d.PressRelease, want)
	}

	// Reviews replace wholesale: a second frame supersedes the first.
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaReviewsStart})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaReviews, Reviews: []string{"ok"}})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaReviews, Reviews: []string{"Love it", "Would buy again"}})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaReviewsEnd})

	if len(d.Reviews) != 2 || d.Reviews[0] != "Love it" {
		t.Errorf("Reviews = %v, want replacement list", d.Reviews)
	}
}

func TestApplyIdeaStopClearsLoading(t *testing.T) {
	var d IdeaDetail
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaPressReleaseStart})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaSocialStart})
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaReviewsStart})

	// A stream that ends without individual end markers must not leave
	// any phase stuck in loading.
	d = ApplyIdea(d, IdeaEvent{Kind: IdeaStop})

	if d.PressReleaseLoading || d.SocialLoading || d.ReviewsLoading {
		t.Errorf("loading flags survived stop: %+v", d)
	}
	if !d.Done {
		t.Error("Done = false after stop")
	}
}
