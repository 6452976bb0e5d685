package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clubdeck/clubdeck/internal/config"
	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/pins"
)

type fakeSource struct {
	name  string
	typ   feeds.SourceType
	items []feeds.Item
}

func (f *fakeSource) Name() string           { return f.name }
func (f *fakeSource) Type() feeds.SourceType { return f.typ }
func (f *fakeSource) Fetch(ctx context.Context) ([]feeds.Item, error) {
	return f.items, nil
}

func testStore(t *testing.T) *pins.Store {
	t.Helper()
	s, err := pins.Open(":memory:")
	if err != nil {
		t.Fatalf("open pin store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFeedSetLoadedRanksEndedLast(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	src := &fakeSource{name: "Events", typ: feeds.SourceEvents}
	m := NewFeedModel(src, testStore(t), config.DefaultConfig().UI)
	m = m.SetLoaded(FeedLoaded{Source: feeds.SourceEvents, Items: []feeds.Item{
		{Key: "ended", Title: "Old", End: &past},
		{Key: "soon", Title: "Soon", End: &future},
	}})

	visible := m.visible()
	if len(visible) != 2 {
		t.Fatalf("visible = %d items, want 2", len(visible))
	}
	if visible[0].Key != "soon" || visible[1].Key != "ended" {
		t.Errorf("order = [%s %s], want ended item last", visible[0].Key, visible[1].Key)
	}
}

func TestFeedSearchFilters(t *testing.T) {
	future := time.Now().Add(time.Hour)
	src := &fakeSource{name: "Events", typ: feeds.SourceEvents}
	m := NewFeedModel(src, testStore(t), config.DefaultConfig().UI)
	m = m.SetLoaded(FeedLoaded{Source: feeds.SourceEvents, Items: []feeds.Item{
		{Key: "a", Title: "Game Jam", End: &future},
		{Key: "b", Title: "AMA with Zach", End: &future},
	}})

	m.search.SetValue("game")
	visible := m.visible()
	if len(visible) != 1 || visible[0].Key != "a" {
		t.Fatalf("filter 'game' = %d items, want only the game jam", len(visible))
	}
}

func TestFeedPinTogglePersists(t *testing.T) {
	store := testStore(t)
	future := time.Now().Add(time.Hour)
	src := &fakeSource{name: "Events", typ: feeds.SourceEvents}
	m := NewFeedModel(src, store, config.DefaultConfig().UI)
	m = m.SetLoaded(FeedLoaded{Source: feeds.SourceEvents, Items: []feeds.Item{
		{Key: "a", Title: "Game Jam", End: &future},
	}})

	m, _ = m.Update(keyMsg("p"))
	if !m.pinned["a"] {
		t.Error("item not pinned after p")
	}
	if !store.Contains(string(feeds.SourceEvents), "a") {
		t.Error("pin not written through to store")
	}
	if store.Contains("Events", "a") {
		t.Error("pin keyed by display name instead of source type")
	}

	m, _ = m.Update(keyMsg("p"))
	if m.pinned["a"] {
		t.Error("item still pinned after second p")
	}
}

func TestFeedCountdownActiveOnlyWithPinnedFutureItem(t *testing.T) {
	future := time.Now().Add(time.Hour)
	src := &fakeSource{name: "Events", typ: feeds.SourceEvents}
	m := NewFeedModel(src, testStore(t), config.DefaultConfig().UI)
	m = m.SetLoaded(FeedLoaded{Source: feeds.SourceEvents, Items: []feeds.Item{
		{Key: "a", Title: "Game Jam", Start: &future, ThreeState: true},
	}})

	if m.CountdownActive() {
		t.Error("countdown active with nothing pinned")
	}
	m, _ = m.Update(keyMsg("p"))
	if !m.CountdownActive() {
		t.Error("countdown inactive after pinning a future item")
	}
	if _, ok := m.countdowns["a"]; !ok {
		t.Error("no countdown string for pinned future item")
	}
}

func TestFeedTickRefreshesCountdowns(t *testing.T) {
	start := time.Now().Add(time.Hour)
	src := &fakeSource{name: "Events", typ: feeds.SourceEvents}
	m := NewFeedModel(src, testStore(t), config.DefaultConfig().UI)
	m = m.SetLoaded(FeedLoaded{Source: feeds.SourceEvents, Items: []feeds.Item{
		{Key: "a", Title: "Game Jam", Start: &start, ThreeState: true},
	}})
	m, _ = m.Update(keyMsg("p"))

	before := m.countdowns["a"]
	m = m.Tick(time.Now().Add(10 * time.Minute))
	after := m.countdowns["a"]
	if before == after {
		t.Errorf("countdown did not advance: %q", after)
	}
}
