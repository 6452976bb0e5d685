package mail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubdeck/clubdeck/internal/fetch"
)

const sampleMail = `{"mail":[
  {
    "id": "m_1",
    "type": "letter_mail",
    "public_url": "https://mail.hackclub.com/m/1",
    "status": "Shipped via USPS!",
    "tags": ["stickers"],
    "title": "Sticker pack",
    "created_at": "2026-02-01T10:00:00Z",
    "updated_at": "2026-02-03T15:30:00Z",
    "tracking_number": "9400100000000000000000",
    "tracking_link": "https://tools.usps.com/track"
  },
  {
    "id": "m_2",
    "type": "package",
    "public_url": "https://mail.hackclub.com/m/2",
    "status": "Pending",
    "tags": [],
    "created_at": "2026-02-05T10:00:00Z",
    "updated_at": "2026-02-05T10:00:00Z"
  }
]}`

func TestFetchSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer th_apk_live_k" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(sampleMail))
	}))
	defer srv.Close()

	c := New(fetch.NewClient(5 * time.Second))
	c.url = srv.URL

	items, err := c.Fetch(context.Background(), "th_apk_live_k")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].TrackingNumber == "" {
		t.Error("tracking number lost")
	}
	if items[1].Title != "" {
		t.Errorf("missing title should stay empty, got %q", items[1].Title)
	}
}

func TestFetchUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(fetch.NewClient(5 * time.Second))
	c.url = srv.URL

	if _, err := c.Fetch(context.Background(), "bad-key"); err == nil {
		t.Fatal("expected error for 401")
	}
}

func TestBucket(t *testing.T) {
	cases := map[string]StatusBucket{
		"Shipped":           BucketShipped,
		"shipped!":          BucketShipped,
		"Shipped via USPS!": BucketShipped,
		"Printed":           BucketShipped,
		"Mailed!":           BucketShipped,
		"Pending":           BucketPending,
		"Received":          BucketReceived,
		"In queue":          BucketOther,
		"":                  BucketOther,
	}
	for status, want := range cases {
		if got := Bucket(status); got != want {
			t.Errorf("Bucket(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestTitleAndTypeLabel(t *testing.T) {
	if got := Title(Item{}); got != "Untitled" {
		t.Errorf("Title = %q", got)
	}
	if got := Title(Item{Title: "Sticker pack"}); got != "Sticker pack" {
		t.Errorf("Title = %q", got)
	}
	if got := TypeLabel(Item{Type: "letter_mail"}); got != "letter mail" {
		t.Errorf("TypeLabel = %q", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp("2026-02-01T10:00:00Z")
	if got != "Feb 1, 2026, 10:00 AM" {
		t.Errorf("FormatTimestamp = %q", got)
	}
	// Unparseable input comes back verbatim, never an error.
	if got := FormatTimestamp("whenever"); got != "whenever" {
		t.Errorf("FormatTimestamp fallback = %q", got)
	}
}
