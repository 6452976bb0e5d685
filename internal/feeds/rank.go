package feeds

import (
	"sort"
	"time"

	"github.com/clubdeck/clubdeck/internal/temporal"
)

// Rank orders items for display. Tiers, highest precedence first:
//
//  1. live items (three-state feeds) before everything else
//  2. ended items after everything else, pinned or not
//  3. among the remaining items, pinned before unpinned
//  4. ascending by the relevant instant; items with no parseable
//     instant last within their tier
//
// Ties preserve input order. The comparator reads time only from the
// now argument, so a fixed (items, pinned, now) triple always produces
// the same order.
func Rank(items []Item, pinned map[string]bool, now time.Time) []Item {
	ranked := make([]Item, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		as, bs := a.Status(now), b.Status(now)

		aLive := as == temporal.StatusLive
		bLive := bs == temporal.StatusLive
		if aLive != bLive {
			return aLive
		}

		aEnded := as == temporal.StatusEnded
		bEnded := bs == temporal.StatusEnded
		if aEnded != bEnded {
			return bEnded
		}

		if !aEnded && !aLive {
			aPinned := pinned[a.Key]
			bPinned := pinned[b.Key]
			if aPinned != bPinned {
				return aPinned
			}
		}

		at, bt := a.relevant(), b.relevant()
		switch {
		case at == nil && bt == nil:
			return false
		case at == nil:
			return false
		case bt == nil:
			return true
		default:
			return at.Before(*bt)
		}
	})

	return ranked
}
