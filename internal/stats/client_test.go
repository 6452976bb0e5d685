package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubdeck/clubdeck/internal/fetch"
)

const slackJSON = `{"total_members_count":50000,"messages_count_1d":12345,"active_users_28d":9000,"active_users_1d":1500}`
const hcbJSON = `{"raised":123456789,"events_count":2100,"all":{"transactions_volume":987654321}}`

func newTestClient(t *testing.T, slackHandler, hcbHandler http.HandlerFunc) *Client {
	t.Helper()
	slackSrv := httptest.NewServer(slackHandler)
	hcbSrv := httptest.NewServer(hcbHandler)
	t.Cleanup(slackSrv.Close)
	t.Cleanup(hcbSrv.Close)

	c := New(fetch.NewClient(5 * time.Second))
	c.slackURL = slackSrv.URL
	c.hcbURL = hcbSrv.URL
	return c
}

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(body)) }
}

func fail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}
}

func TestFetchJoinsBoth(t *testing.T) {
	c := newTestClient(t, ok(slackJSON), ok(hcbJSON))

	combined, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if combined.Slack == nil || combined.HCB == nil {
		t.Fatalf("missing halves: %+v", combined)
	}
	if combined.Slack.TotalMembersCount != 50000 {
		t.Errorf("members = %d", combined.Slack.TotalMembersCount)
	}
	if combined.HCB.All.TransactionsVolume != 987654321 {
		t.Errorf("volume = %d", combined.HCB.All.TransactionsVolume)
	}
}

func TestFetchToleratesOneFailure(t *testing.T) {
	c := newTestClient(t, fail(), ok(hcbJSON))

	combined, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("one failure should not error: %v", err)
	}
	if combined.Slack != nil {
		t.Error("failed half should be nil")
	}
	if combined.HCB == nil {
		t.Error("healthy half should survive")
	}
}

func TestFetchBothFail(t *testing.T) {
	c := newTestClient(t, fail(), fail())
	if _, err := c.Fetch(context.Background()); err == nil {
		t.Fatal("both halves failing should error")
	}
}

func TestCards(t *testing.T) {
	combined := &Combined{
		Slack: &SlackStats{TotalMembersCount: 50000, MessagesCount1D: 12345, ActiveUsers28D: 9000, ActiveUsers1D: 1500},
		HCB:   &HCBStats{Raised: 123456789, EventsCount: 2100},
	}
	combined.HCB.All.TransactionsVolume = 987654321

	cards := Cards(combined)
	want := map[string]string{
		"Total Members":      "50,000",
		"Messages Sent (1d)": "12,345",
		"Total Raised":       "$1,234,567",
		"Transaction Volume": "$9,876,543",
		"Projects":           "2,100",
	}
	got := map[string]string{}
	for _, card := range cards {
		got[card.Label] = card.Value
	}
	for label, value := range want {
		if got[label] != value {
			t.Errorf("%s = %q, want %q", label, got[label], value)
		}
	}
}

func TestCardsZeroDollarsIsNotMissing(t *testing.T) {
	combined := &Combined{HCB: &HCBStats{Raised: 0}}
	got := map[string]string{}
	for _, card := range Cards(combined) {
		got[card.Label] = card.Value
	}
	if got["Total Raised"] != "$0" {
		t.Errorf("Total Raised = %q, want $0 for a present zero", got["Total Raised"])
	}
	if got["Total Members"] != "N/A" {
		t.Errorf("Total Members = %q, want N/A for the missing slack half", got["Total Members"])
	}
}

func TestCardsNilHalves(t *testing.T) {
	cards := Cards(&Combined{})
	for _, card := range cards {
		if card.Value != "N/A" {
			t.Errorf("%s = %q, want N/A", card.Label, card.Value)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-4200:   "-4,200",
	}
	for in, want := range cases {
		if got := groupDigits(in); got != want {
			t.Errorf("groupDigits(%d) = %q, want %q", in, got, want)
		}
	}
}
