// Package events maps the community events calendar API into feed items.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/fetch"
	"github.com/clubdeck/clubdeck/internal/logging"
	"github.com/clubdeck/clubdeck/internal/temporal"
)

const apiURL = "https://events.hackclub.com/api/events/upcoming/"

// apiEvent mirrors the upstream payload. Optional fields stay optional;
// a missing field never fails the whole screen.
type apiEvent struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Leader   string `json:"leader"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Cal      string `json:"cal"`
	Avatar   string `json:"avatar"`
	Approved bool   `json:"approved"`
	YouTube  string `json:"youtube,omitempty"`
	AMA      bool   `json:"ama"`
}

// Source fetches upcoming community events.
type Source struct {
	client *fetch.Client
	url    string
}

// New creates an events source using the shared HTTP client.
func New(client *fetch.Client) *Source {
	return &Source{client: client, url: apiURL}
}

func (s *Source) Name() string { return "Events" }

func (s *Source) Type() feeds.SourceType { return feeds.SourceEvents }

// Fetch retrieves and normalizes the event list. Events carry start and
// end instants from the API, so the feed is three-state: live events
// outrank everything else.
func (s *Source) Fetch(ctx context.Context) ([]feeds.Item, error) {
	var raw []apiEvent
	if err := s.client.GetJSON(ctx, s.url, "", &raw); err != nil {
		return nil, fmt.Errorf("events: %w", err)
	}

	items := make([]feeds.Item, 0, len(raw))
	for i, ev := range raw {
		items = append(items, mapEvent(ev, i))
	}
	return items, nil
}

func mapEvent(ev apiEvent, ordinal int) feeds.Item {
	key := ev.ID
	if key == "" {
		// The API has always sent ids, but a stable composite beats a crash.
		key = fmt.Sprintf("%s-%d", ev.Title, ordinal)
	}

	it := feeds.Item{
		Key:        key,
		Source:     feeds.SourceEvents,
		Title:      ev.Title,
		Summary:    ev.Desc,
		URL:        ev.Cal,
		Leader:     ev.Leader,
		AMA:        ev.AMA,
		ThreeState: true,
	}

	if t, ok := temporal.ParseInstant(ev.Start); ok {
		it.Start = &t
	} else if ev.Start != "" {
		logging.Debug("unparseable event start", "event", ev.Title, "start", ev.Start)
	}
	if t, ok := temporal.ParseInstant(ev.End); ok {
		it.End = &t
	}

	return it
}

// ShareText composes the share-sheet message for an event.
func ShareText(it feeds.Item, now time.Time) string {
	statusText := "Upcoming"
	switch it.Status(now) {
	case temporal.StatusEnded:
		statusText = "Ended"
	case temporal.StatusLive:
		statusText = "Live Now"
	}

	when := ""
	if it.Start != nil {
		when = it.Start.Format("Jan 2, 2006 at 3:04 PM")
	}

	msg := fmt.Sprintf("Check out this Hack Club event: %s\n\n👤 Led by %s\n📅 %s\n🏷️ %s\n\n%s",
		it.Title, it.Leader, when, statusText, it.Summary)
	if it.URL != "" {
		msg += fmt.Sprintf("\n\nAdd to calendar: %s", it.URL)
	}
	return msg
}
