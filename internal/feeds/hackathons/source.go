// Package hackathons maps the hackathon directory API into feed items.
package hackathons

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/fetch"
	"github.com/clubdeck/clubdeck/internal/temporal"
)

const apiURL = "https://dash.hackathons.hackclub.com/api/v1/hackathons"

type apiResponse struct {
	Data []apiHackathon `json:"data"`
}

type apiHackathon struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Website  string      `json:"website"`
	LogoURL  string      `json:"logo_url"`
	StartsAt string      `json:"starts_at"`
	EndsAt   string      `json:"ends_at"`
	Location apiLocation `json:"location"`
}

type apiLocation struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// Source fetches the hackathon directory.
type Source struct {
	client *fetch.Client
	url    string
}

// New creates a hackathons source using the shared HTTP client.
func New(client *fetch.Client) *Source {
	return &Source{client: client, url: apiURL}
}

func (s *Source) Name() string { return "Hackathons" }

func (s *Source) Type() feeds.SourceType { return feeds.SourceHackathons }

// Fetch retrieves and normalizes the hackathon list. The directory is a
// two-state feed: a hackathon is ended or it isn't, and non-ended ones
// are labeled by where they happen rather than by a live window.
func (s *Source) Fetch(ctx context.Context) ([]feeds.Item, error) {
	var raw apiResponse
	if err := s.client.GetJSON(ctx, s.url, "", &raw); err != nil {
		return nil, fmt.Errorf("hackathons: %w", err)
	}

	items := make([]feeds.Item, 0, len(raw.Data))
	for i, h := range raw.Data {
		items = append(items, mapHackathon(h, i))
	}
	return items, nil
}

func mapHackathon(h apiHackathon, ordinal int) feeds.Item {
	key := h.ID
	if key == "" {
		key = fmt.Sprintf("%s-%d", h.Name, ordinal)
	}

	loc := feeds.Location{
		Kind:        feeds.LocationOnline,
		City:        h.Location.City,
		Country:     h.Location.Country,
		CountryCode: h.Location.CountryCode,
	}
	if h.Location.City != "" {
		loc.Kind = feeds.LocationInPerson
	}

	it := feeds.Item{
		Key:      key,
		Source:   feeds.SourceHackathons,
		Title:    h.Name,
		URL:      h.Website,
		Location: loc,
	}

	if t, ok := temporal.ParseInstant(h.StartsAt); ok {
		it.Start = &t
	}
	if t, ok := temporal.ParseInstant(h.EndsAt); ok {
		it.End = &t
	}

	return it
}

// StatusLabel is the display label for a hackathon card: Ended,
// In-person, or Online.
func StatusLabel(it feeds.Item, now time.Time) string {
	if it.Status(now) == temporal.StatusEnded {
		return "Ended"
	}
	if it.Location.Kind == feeds.LocationInPerson {
		return "In-person"
	}
	return "Online"
}

// FlagEmoji turns a two-letter country code into its regional-indicator
// flag. Returns "" for anything that doesn't resolve to two letters.
func FlagEmoji(country string) string {
	if country == "" {
		return ""
	}
	code := strings.ToUpper(country)
	code = strings.Map(func(r rune) rune {
		if r < 'A' || r > 'Z' {
			return -1
		}
		return r
	}, code)
	if len(code) != 2 {
		return ""
	}
	return string([]rune{
		0x1f1e6 + rune(code[0]) - 'A',
		0x1f1e6 + rune(code[1]) - 'A',
	})
}

// ShareText composes the share-sheet message for a hackathon.
func ShareText(it feeds.Item, now time.Time) string {
	flag := FlagEmoji(it.Location.CountryCode)
	if flag == "" {
		flag = FlagEmoji(it.Location.Country)
	}
	city := it.Location.City
	if city == "" {
		city = "Online"
	}

	dates := ""
	if it.Start != nil && it.End != nil {
		dates = fmt.Sprintf("%s - %s", it.Start.Format("Jan 2, 2006"), it.End.Format("Jan 2, 2006"))
	}

	msg := fmt.Sprintf("Check out this hackathon: %s\n\n📅 %s\n📍 %s %s, %s\n🏷️ %s",
		it.Title, dates, flag, city, it.Location.Country, StatusLabel(it, now))
	if it.URL != "" {
		msg += fmt.Sprintf("\n\nLearn more: %s", it.URL)
	}
	return msg
}
