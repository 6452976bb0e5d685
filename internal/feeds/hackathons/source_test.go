package hackathons

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/fetch"
)

const sampleHackathons = `{
  "data": [
    {
      "id": "hk_1",
      "name": "Scrapyard",
      "website": "https://scrapyard.hackclub.com",
      "logo_url": "https://example.com/logo.png",
      "starts_at": "2026-03-15T09:00:00Z",
      "ends_at": "2026-03-16T18:00:00Z",
      "location": {"city": "Boston", "country": "United States", "country_code": "US"}
    },
    {
      "id": "hk_2",
      "name": "Counterspell Online",
      "website": "",
      "logo_url": "",
      "starts_at": "2026-04-01T00:00:00Z",
      "ends_at": "2026-04-02T00:00:00Z",
      "location": {"city": "", "country": "", "country_code": ""}
    }
  ]
}`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleHackathons))
	}))
	defer srv.Close()

	src := New(fetch.NewClient(5 * time.Second))
	src.url = srv.URL

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	boston := items[0]
	if boston.Key != "hk_1" {
		t.Errorf("key = %q", boston.Key)
	}
	if boston.Location.Kind != feeds.LocationInPerson {
		t.Errorf("city-bearing hackathon should be in-person, got %v", boston.Location.Kind)
	}
	if items[1].Location.Kind != feeds.LocationOnline {
		t.Errorf("cityless hackathon should be online, got %v", items[1].Location.Kind)
	}
	if boston.ThreeState {
		t.Error("hackathons are a two-state feed")
	}
}

func TestStatusLabel(t *testing.T) {
	now := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	end := now.Add(48 * time.Hour)

	inPerson := feeds.Item{Start: &start, End: &end,
		Location: feeds.Location{Kind: feeds.LocationInPerson, City: "Boston"}}
	online := feeds.Item{Start: &start, End: &end,
		Location: feeds.Location{Kind: feeds.LocationOnline}}
	pastEnd := now.Add(-time.Hour)
	ended := feeds.Item{End: &pastEnd,
		Location: feeds.Location{Kind: feeds.LocationInPerson, City: "Boston"}}

	if got := StatusLabel(inPerson, now); got != "In-person" {
		t.Errorf("in-person label = %q", got)
	}
	if got := StatusLabel(online, now); got != "Online" {
		t.Errorf("online label = %q", got)
	}
	// Ended wins over location.
	if got := StatusLabel(ended, now); got != "Ended" {
		t.Errorf("ended label = %q", got)
	}
}

func TestFlagEmoji(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"US", "\U0001F1FA\U0001F1F8"},
		{"us", "\U0001F1FA\U0001F1F8"},
		{"CA", "\U0001F1E8\U0001F1E6"},
		{"U.S.", "\U0001F1FA\U0001F1F8"}, // punctuation stripped
		{"United States", ""},            // too long once cleaned
		{"", ""},
	}
	for _, c := range cases {
		if got := FlagEmoji(c.in); got != c.want {
			t.Errorf("FlagEmoji(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
