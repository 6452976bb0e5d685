package feeds

import (
	"testing"
	"time"

	"github.com/clubdeck/clubdeck/internal/extract"
)

func tp(t time.Time) *time.Time { return &t }

func keys(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

func assertOrder(t *testing.T, got []Item, want ...string) {
	t.Helper()
	gk := keys(got)
	if len(gk) != len(want) {
		t.Fatalf("got %v, want %v", gk, want)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("got %v, want %v", gk, want)
		}
	}
}

func TestRankEndedSortsLast(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	a := Item{Key: "a", End: tp(now.Add(24 * time.Hour))}
	b := Item{Key: "b", End: tp(now.Add(-time.Hour))}

	ranked := Rank([]Item{a, b}, nil, now)
	assertOrder(t, ranked, "a", "b")
}

func TestRankEndedBeatsPin(t *testing.T) {
	// Pinning an ended item must not move it ahead of an upcoming one.
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	a := Item{Key: "a", End: tp(now.Add(24 * time.Hour))}
	b := Item{Key: "b", End: tp(now.Add(-time.Hour))}

	ranked := Rank([]Item{a, b}, map[string]bool{"b": true}, now)
	assertOrder(t, ranked, "a", "b")
}

func TestRankLiveFirst(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	upcoming := Item{Key: "up", ThreeState: true,
		Start: tp(now.Add(time.Hour)), End: tp(now.Add(2 * time.Hour))}
	live := Item{Key: "live", ThreeState: true,
		Start: tp(now.Add(-time.Hour)), End: tp(now.Add(time.Hour))}
	ended := Item{Key: "done", ThreeState: true,
		Start: tp(now.Add(-3 * time.Hour)), End: tp(now.Add(-2 * time.Hour))}

	// Even a pinned upcoming item stays behind a live one.
	ranked := Rank([]Item{upcoming, ended, live}, map[string]bool{"up": true}, now)
	assertOrder(t, ranked, "live", "up", "done")
}

func TestRankPinnedBeforeUnpinnedWithinTier(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	early := Item{Key: "early", Start: tp(now.Add(time.Hour)), End: tp(now.Add(2 * time.Hour))}
	late := Item{Key: "late", Start: tp(now.Add(48 * time.Hour)), End: tp(now.Add(49 * time.Hour))}

	ranked := Rank([]Item{early, late}, map[string]bool{"late": true}, now)
	assertOrder(t, ranked, "late", "early")
}

func TestRankChronologicalWithinTier(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	c := Item{Key: "c", Start: tp(now.Add(72 * time.Hour)), End: tp(now.Add(73 * time.Hour))}
	a := Item{Key: "a", Start: tp(now.Add(2 * time.Hour)), End: tp(now.Add(3 * time.Hour))}
	b := Item{Key: "b", Start: tp(now.Add(24 * time.Hour)), End: tp(now.Add(25 * time.Hour))}

	ranked := Rank([]Item{c, a, b}, nil, now)
	assertOrder(t, ranked, "a", "b", "c")
}

func TestRankNoInstantSortsLastWithinTier(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	dated := Item{Key: "dated", End: tp(now.Add(time.Hour)), RawDeadline: "April 1, 2026"}
	undated := Item{Key: "undated", RawDeadline: extract.NoDeadline}

	ranked := Rank([]Item{undated, dated}, nil, now)
	assertOrder(t, ranked, "dated", "undated")

	// A pinned undated item still precedes unpinned dated ones.
	ranked = Rank([]Item{undated, dated}, map[string]bool{"undated": true}, now)
	assertOrder(t, ranked, "undated", "dated")
}

func TestRankStable(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	same := tp(now.Add(time.Hour))
	items := []Item{
		{Key: "first", Start: same},
		{Key: "second", Start: same},
		{Key: "third", Start: same},
	}

	ranked := Rank(items, nil, now)
	assertOrder(t, ranked, "first", "second", "third")

	again := Rank(items, nil, now)
	assertOrder(t, again, "first", "second", "third")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	items := []Item{
		{Key: "z", Start: tp(now.Add(48 * time.Hour))},
		{Key: "a", Start: tp(now.Add(time.Hour))},
	}
	Rank(items, nil, now)
	if items[0].Key != "z" || items[1].Key != "a" {
		t.Errorf("input slice was reordered: %v", keys(items))
	}
}

func TestRankPinBoundaryMovesOnlyAffectedItems(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	items := []Item{
		{Key: "a", Start: tp(now.Add(1 * time.Hour))},
		{Key: "b", Start: tp(now.Add(2 * time.Hour))},
		{Key: "c", Start: tp(now.Add(3 * time.Hour))},
		{Key: "d", Start: tp(now.Add(4 * time.Hour))},
	}

	ranked := Rank(items, map[string]bool{"c": true}, now)
	assertOrder(t, ranked, "c", "a", "b", "d")

	// Unpinning c restores pure chronological order; a, b, d keep
	// their relative positions throughout.
	ranked = Rank(items, nil, now)
	assertOrder(t, ranked, "a", "b", "c", "d")
}
