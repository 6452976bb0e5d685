// Package countdown derives remaining-time strings for pinned feed items.
// All values are ephemeral: every tick recomputes the whole map from a
// single now so items never disagree about what time it is.
package countdown

import (
	"fmt"
	"time"

	"github.com/clubdeck/clubdeck/internal/feeds"
)

const (
	msPerDay    = 86_400_000
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1_000
)

// Remaining formats the time between now and target. The second return
// is false once the target has elapsed; callers drop the item from the
// countdown map rather than showing transition text.
//
// The minutes component is always kept: the low-end form is "0m 42s",
// never a bare "42s".
func Remaining(target, now time.Time) (string, bool) {
	diffMs := target.Sub(now).Milliseconds()
	if diffMs <= 0 {
		return "", false
	}

	days := diffMs / msPerDay
	hours := (diffMs % msPerDay) / msPerHour
	minutes := (diffMs % msPerHour) / msPerMinute
	seconds := (diffMs % msPerMinute) / msPerSecond

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds), true
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds), true
	default:
		return fmt.Sprintf("%dm %ds", minutes, seconds), true
	}
}

// Snapshot computes countdowns for every pinned item with a future
// target, keyed by item key. One now for the whole tick.
func Snapshot(items []feeds.Item, pinned map[string]bool, now time.Time) map[string]string {
	out := make(map[string]string)
	for _, it := range items {
		if !pinned[it.Key] {
			continue
		}
		target := it.CountdownTarget()
		if target == nil {
			continue
		}
		if s, ok := Remaining(*target, now); ok {
			out[it.Key] = s
		}
	}
	return out
}

// Active reports whether a ticker is worth running: at least one item
// is pinned with a target still in the future.
func Active(items []feeds.Item, pinned map[string]bool, now time.Time) bool {
	if len(items) == 0 || len(pinned) == 0 {
		return false
	}
	for _, it := range items {
		if !pinned[it.Key] {
			continue
		}
		if target := it.CountdownTarget(); target != nil && target.After(now) {
			return true
		}
	}
	return false
}
