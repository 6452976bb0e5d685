// Package ui provides the Bubble Tea TUI for clubdeck.
package ui

import (
	"time"

	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/hackatime"
	"github.com/clubdeck/clubdeck/internal/mail"
	"github.com/clubdeck/clubdeck/internal/scrapbook"
	"github.com/clubdeck/clubdeck/internal/stats"
)

// FeedLoaded is sent when a feed source finishes fetching.
type FeedLoaded struct {
	Source feeds.SourceType
	Items  []feeds.Item
	Err    error
}

// HackatimeLoaded is sent when the coding-stats screen finishes loading.
type HackatimeLoaded struct {
	Stats   *hackatime.Stats
	Today   *hackatime.Stats
	Daily   []hackatime.Point
	Weekly  []hackatime.Point
	Quarter []hackatime.Point
	Err     error
}

// StatsLoaded is sent when the community stats fetch finishes.
type StatsLoaded struct {
	Combined *stats.Combined
	Err      error
}

// MailLoaded is sent when the mail fetch finishes.
type MailLoaded struct {
	Items []mail.Item
	Err   error
}

// ScrapbookLoaded is sent when the scrapbook fetch finishes.
type ScrapbookLoaded struct {
	Profile *scrapbook.Profile
	Posts   []scrapbook.Post
	Err     error
}

// CountdownTick drives the once-per-second countdown refresh. It is only
// scheduled while some visible pinned item has a future target.
type CountdownTick time.Time
