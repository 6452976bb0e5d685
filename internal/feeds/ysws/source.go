// Package ysws maps the You Ship We Ship program feed (RSS) into feed
// items. Deadlines live inside each item's HTML description, so mapping
// goes through the extractor before the temporal parser.
package ysws

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/clubdeck/clubdeck/internal/extract"
	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/fetch"
	"github.com/clubdeck/clubdeck/internal/logging"
	"github.com/clubdeck/clubdeck/internal/temporal"
)

const feedURL = "https://ysws.hackclub.com/feed.xml"

// Source fetches the program feed.
type Source struct {
	client *fetch.Client
	url    string
}

// New creates a YSWS source using the shared HTTP client.
func New(client *fetch.Client) *Source {
	return &Source{client: client, url: feedURL}
}

func (s *Source) Name() string { return "YSWS Programs" }

func (s *Source) Type() feeds.SourceType { return feeds.SourceYSWS }

// Fetch retrieves and normalizes the program feed. The feed has no
// native item ids, so keys are title plus ordinal index — stable across
// re-fetches as long as the feed keeps its order, which is what pin
// persistence needs.
func (s *Source) Fetch(ctx context.Context) ([]feeds.Item, error) {
	body, err := s.client.Get(ctx, s.url, "")
	if err != nil {
		return nil, fmt.Errorf("ysws: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("ysws: parse feed: %w", err)
	}

	items := make([]feeds.Item, 0, len(feed.Items))
	for i, fi := range feed.Items {
		items = append(items, mapProgram(fi, i))
	}
	return items, nil
}

func mapProgram(fi *gofeed.Item, ordinal int) feeds.Item {
	deadline := extract.Deadline(fi.Description)

	it := feeds.Item{
		Key:         fmt.Sprintf("%s-%d", fi.Title, ordinal),
		Source:      feeds.SourceYSWS,
		Title:       fi.Title,
		Summary:     extract.Summary(fi.Description),
		URL:         fi.Link,
		RawDeadline: deadline,
		Discussion:  extract.DiscussionLink(fi.Description),
	}

	// The deadline string stays on the item verbatim even when it
	// doesn't parse; only a parsed instant feeds status and ranking.
	if deadline != extract.NoDeadline {
		if t, ok := temporal.ParseInstant(deadline); ok {
			it.End = &t
		} else {
			logging.Debug("unparseable deadline", "program", fi.Title, "deadline", deadline)
		}
	}

	return it
}

// ShareText composes the share-sheet message for a program.
func ShareText(it feeds.Item) string {
	return fmt.Sprintf("Check out this program: %s\n\n%s\n\nDeadline: %s\n\nLearn more: %s",
		it.Title, it.Summary, it.RawDeadline, it.URL)
}
