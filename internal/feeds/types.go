package feeds

import (
	"context"
	"time"

	"github.com/clubdeck/clubdeck/internal/extract"
	"github.com/clubdeck/clubdeck/internal/temporal"
)

// SourceType identifies the origin of a feed item
type SourceType string

const (
	SourceEvents     SourceType = "events"
	SourceHackathons SourceType = "hackathons"
	SourceYSWS       SourceType = "ysws"
)

// LocationKind says whether an item happens somewhere physical.
type LocationKind string

const (
	LocationOnline   LocationKind = "online"
	LocationInPerson LocationKind = "in-person"
	LocationUnknown  LocationKind = "unknown"
)

// Location is only populated for location-bearing feeds.
type Location struct {
	Kind        LocationKind
	City        string
	Country     string
	CountryCode string
}

// Item is the normalized shape every source maps into.
// Key must be stable across re-fetches of the same logical item so that
// pins survive a refresh.
type Item struct {
	Key         string
	Source      SourceType
	Title       string
	Summary     string
	URL         string
	Leader      string // event leader / organizer, where the feed has one
	Start       *time.Time
	End         *time.Time
	RawDeadline string // original deadline text, kept for display even when unparseable
	Location    Location
	AMA         bool   // events: organizer runs an AMA
	Discussion  string // ysws: slack discussion link
	ThreeState  bool   // whether this feed distinguishes live from upcoming
}

// relevant returns the instant used for chronological ordering and
// countdowns: start when known, otherwise the end/deadline.
func (it Item) relevant() *time.Time {
	if it.Start != nil {
		return it.Start
	}
	return it.End
}

// CountdownTarget is the instant a pinned item counts down to, or nil.
func (it Item) CountdownTarget() *time.Time {
	return it.relevant()
}

// Status evaluates the item against now. Two-state feeds only ever
// report ended or upcoming.
func (it Item) Status(now time.Time) temporal.Status {
	if it.ThreeState && it.Start != nil && it.End != nil {
		return temporal.StatusAt(*it.Start, *it.End, now)
	}
	if it.End != nil && temporal.IsPast(*it.End, now) {
		return temporal.StatusEnded
	}
	return temporal.StatusUpcoming
}

// HasDeadline reports whether the item carries a usable deadline string.
func (it Item) HasDeadline() bool {
	return it.RawDeadline != "" && it.RawDeadline != extract.NoDeadline
}

// Source is the interface all feeds implement.
type Source interface {
	// Name returns the human-readable source name
	Name() string

	// Type returns the source type, which doubles as the pin namespace
	Type() SourceType

	// Fetch retrieves and normalizes the latest items
	Fetch(ctx context.Context) ([]Item, error)
}
