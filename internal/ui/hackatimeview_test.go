package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/clubdeck/clubdeck/internal/hackatime"
)

func weekPoints(n int) []hackatime.Point {
	start := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7*(n-1))
	points := make([]hackatime.Point, 0, n)
	for i := 0; i < n; i++ {
		s := start.AddDate(0, 0, 7*i)
		points = append(points, hackatime.Point{Start: s, End: s.AddDate(0, 0, 6), Label: s.Format("Jan 2"), Hours: float64(i)})
	}
	return points
}

func TestHackatimeViewRendersAllSeries(t *testing.T) {
	m := NewHackatimeModel(hackatime.New(nil), "U0123")
	m, _ = m.Update(HackatimeLoaded{
		Stats:   &hackatime.Stats{HumanReadableTotal: "120 hrs", HumanReadableDailyAverage: "2 hrs"},
		Today:   &hackatime.Stats{HumanReadableTotal: "1 hr"},
		Daily:   weekPoints(7),
		Weekly:  weekPoints(4),
		Quarter: weekPoints(12),
	})

	if len(m.quarter) != 12 {
		t.Fatalf("quarter series = %d points, want 12", len(m.quarter))
	}
	view := m.View()
	for _, section := range []string{"Last 7 days", "Last 4 weeks", "Last 12 weeks"} {
		if !strings.Contains(view, section) {
			t.Errorf("view missing %q section", section)
		}
	}
}
