// Package stats fetches the community-wide numbers: Slack workspace
// activity and HCB (the nonprofit bank) totals. The two upstreams are
// independent, so they fetch concurrently and join before rendering;
// either one failing leaves its half nil and the cards show N/A.
package stats

import (
	"context"
	"fmt"
	"sync"

	"github.com/clubdeck/clubdeck/internal/fetch"
	"github.com/clubdeck/clubdeck/internal/logging"
)

const (
	slackURL = "https://hackclub.com/api/slack/"
	hcbURL   = "https://hcb.hackclub.com/stats"
)

// SlackStats is the workspace activity snapshot.
type SlackStats struct {
	TotalMembersCount int `json:"total_members_count"`
	MessagesCount1D   int `json:"messages_count_1d"`
	ActiveUsers28D    int `json:"active_users_28d"`
	ActiveUsers1D     int `json:"active_users_1d"`
}

// HCBStats is the bank totals snapshot. Money fields are cents.
type HCBStats struct {
	Raised      int64 `json:"raised"`
	EventsCount int   `json:"events_count"`
	All         struct {
		TransactionsVolume int64 `json:"transactions_volume"`
	} `json:"all"`
}

// Combined joins both halves. Either may be nil after a failed fetch.
type Combined struct {
	Slack *SlackStats
	HCB   *HCBStats
}

// Card is one rendered stat: a label and a display value.
type Card struct {
	Label string
	Value string
}

// Client fetches community stats.
type Client struct {
	http     *fetch.Client
	slackURL string
	hcbURL   string
}

// New creates a stats client using the shared HTTP client.
func New(httpClient *fetch.Client) *Client {
	return &Client{http: httpClient, slackURL: slackURL, hcbURL: hcbURL}
}

// Fetch retrieves both snapshots concurrently and joins them. It only
// errors when both halves fail; one dead upstream degrades to N/A cards.
func (c *Client) Fetch(ctx context.Context) (*Combined, error) {
	var (
		wg       sync.WaitGroup
		slack    SlackStats
		hcb      HCBStats
		slackErr error
		hcbErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		slackErr = c.http.GetJSON(ctx, c.slackURL, "", &slack)
	}()
	go func() {
		defer wg.Done()
		hcbErr = c.http.GetJSON(ctx, c.hcbURL, "", &hcb)
	}()
	wg.Wait()

	if slackErr != nil && hcbErr != nil {
		return nil, fmt.Errorf("stats: slack: %v; hcb: %v", slackErr, hcbErr)
	}

	combined := &Combined{}
	if slackErr != nil {
		logging.Warn("slack stats failed", "err", slackErr)
	} else {
		combined.Slack = &slack
	}
	if hcbErr != nil {
		logging.Warn("hcb stats failed", "err", hcbErr)
	} else {
		combined.HCB = &hcb
	}
	return combined, nil
}

// Cards flattens a Combined into display rows, slack first.
func Cards(c *Combined) []Card {
	cards := []Card{
		{"Total Members", countValue(c.Slack, func(s *SlackStats) int { return s.TotalMembersCount })},
		{"Messages Sent (1d)", countValue(c.Slack, func(s *SlackStats) int { return s.MessagesCount1D })},
		{"Active Users (28d)", countValue(c.Slack, func(s *SlackStats) int { return s.ActiveUsers28D })},
		{"Active Users (1d)", countValue(c.Slack, func(s *SlackStats) int { return s.ActiveUsers1D })},
	}

	if c.HCB == nil {
		cards = append(cards,
			Card{"Total Raised", "N/A"},
			Card{"Transaction Volume", "N/A"},
			Card{"Projects", "N/A"})
		return cards
	}

	cards = append(cards,
		Card{"Total Raised", dollars(c.HCB.Raised)},
		Card{"Transaction Volume", dollars(c.HCB.All.TransactionsVolume)},
		Card{"Projects", groupDigits(int64(c.HCB.EventsCount))})
	return cards
}

func countValue(s *SlackStats, get func(*SlackStats) int) string {
	if s == nil {
		return "N/A"
	}
	return groupDigits(int64(get(s)))
}

// dollars renders cents as whole dollars with thousands separators.
func dollars(cents int64) string {
	return "$" + groupDigits(cents/100)
}

// groupDigits inserts commas every three digits.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
