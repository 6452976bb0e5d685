// Package hackatime is a read-only client for the coding-time tracking
// API. Besides the all-time and today snapshots, it assembles windowed
// series (last 7 days, last 4 weeks, last 12 weeks) out of bounded
// sequential range queries; a single failed window becomes a zero point
// instead of failing the batch.
package hackatime

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/clubdeck/clubdeck/internal/fetch"
	"github.com/clubdeck/clubdeck/internal/logging"
)

const baseURL = "https://hackatime.hackclub.com/api/v1"

// Stats is the subset of the API payload the screens use.
type Stats struct {
	Username                  string     `json:"username"`
	TotalSeconds              float64    `json:"total_seconds"`
	DailyAverage              float64    `json:"daily_average"`
	HumanReadableTotal        string     `json:"human_readable_total"`
	HumanReadableDailyAverage string     `json:"human_readable_daily_average"`
	Languages                 []Language `json:"languages"`
}

// Language is one entry in the per-language breakdown.
type Language struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
	Text         string  `json:"text"`
}

type apiResponse struct {
	Data Stats `json:"data"`
}

// Point is one bucket in a windowed series.
type Point struct {
	Start time.Time
	End   time.Time
	Label string
	Hours float64
}

// Client talks to the stats API for one user at a time.
type Client struct {
	http *fetch.Client
	base string
}

// New creates a Client using the shared HTTP client.
func New(httpClient *fetch.Client) *Client {
	return &Client{http: httpClient, base: baseURL}
}

// AllTime fetches the user's all-time stats.
func (c *Client) AllTime(ctx context.Context, slackID string) (*Stats, error) {
	url := fmt.Sprintf("%s/users/%s/stats", c.base, slackID)
	var resp apiResponse
	if err := c.http.GetJSON(ctx, url, "", &resp); err != nil {
		return nil, fmt.Errorf("hackatime all-time: %w", err)
	}
	return &resp.Data, nil
}

// Range fetches stats for one [start, end) window.
func (c *Client) Range(ctx context.Context, slackID string, start, end time.Time) (*Stats, error) {
	url := fmt.Sprintf("%s/users/%s/stats?start_date=%s&end_date=%s",
		c.base, slackID, queryDate(start), queryDate(end))
	var resp apiResponse
	if err := c.http.GetJSON(ctx, url, "", &resp); err != nil {
		return nil, fmt.Errorf("hackatime range %s: %w", queryDate(start), err)
	}
	return &resp.Data, nil
}

// Today fetches the window covering now's calendar day.
func (c *Client) Today(ctx context.Context, slackID string, now time.Time) (*Stats, error) {
	return c.Range(ctx, slackID, now, now.AddDate(0, 0, 1))
}

// DailySeries fetches the last seven days, oldest first, one point per
// day labeled by short weekday name. Windows that fail fetch as zero.
func (c *Client) DailySeries(ctx context.Context, slackID string, now time.Time) []Point {
	points := make([]Point, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		points = append(points, c.point(ctx, slackID, day, day.AddDate(0, 0, 1), day.Format("Mon")))
	}
	return points
}

// WeeklySeries fetches the given number of Monday-start weeks ending
// with the current one, oldest first, labeled by week start date.
// Used with 4 for the month view and 12 for the quarter view.
func (c *Client) WeeklySeries(ctx context.Context, slackID string, now time.Time, weeks int) []Point {
	current := weekStart(now)
	points := make([]Point, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		start := current.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 6)
		points = append(points, c.point(ctx, slackID, start, end, start.Format("Jan 2")))
	}
	return points
}

// point runs one windowed query, substituting zero hours on failure so
// one bad window cannot sink the whole series.
func (c *Client) point(ctx context.Context, slackID string, start, end time.Time, label string) Point {
	p := Point{Start: start, End: end, Label: label}
	stats, err := c.Range(ctx, slackID, start, end)
	if err != nil {
		logging.Warn("stats window failed, using zero", "start", queryDate(start), "err", err)
		return p
	}
	p.Hours = math.Round(stats.TotalSeconds/3600*100) / 100
	return p
}

// FavoriteLanguage returns the first language with recorded time, or
// "N/A". The API already orders languages by total time.
func FavoriteLanguage(stats *Stats) string {
	if stats == nil {
		return "N/A"
	}
	for _, lang := range stats.Languages {
		if lang.TotalSeconds > 0 {
			return lang.Name
		}
	}
	return "N/A"
}

// queryDate formats a date the way the API expects: year-month-day
// without zero padding.
func queryDate(t time.Time) string {
	return t.Format("2006-1-2")
}

// weekStart returns the Monday beginning t's week.
func weekStart(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	return t.AddDate(0, 0, -(offset - 1))
}
