// Package mail is a read-only client for the physical mail tracking API.
// Authentication is a user-supplied bearer token stored verbatim in the
// config; this package never inspects it.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubdeck/clubdeck/internal/fetch"
	"github.com/clubdeck/clubdeck/internal/temporal"
)

const apiURL = "https://mail.hackclub.com/api/public/v1/mail"

// Item is one piece of mail.
type Item struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	PublicURL      string   `json:"public_url"`
	Status         string   `json:"status"`
	Tags           []string `json:"tags"`
	Title          string   `json:"title,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
	TrackingNumber string   `json:"tracking_number,omitempty"`
	TrackingLink   string   `json:"tracking_link,omitempty"`
	Description    string   `json:"description,omitempty"`
}

type apiResponse struct {
	Mail []Item `json:"mail"`
}

// StatusBucket groups the free-form status strings into display colors.
type StatusBucket string

const (
	BucketShipped  StatusBucket = "shipped"  // green: on its way or delivered
	BucketPending  StatusBucket = "pending"  // yellow
	BucketReceived StatusBucket = "received" // blue
	BucketOther    StatusBucket = "other"    // gray
)

// Client fetches the user's mail.
type Client struct {
	http *fetch.Client
	url  string
}

// New creates a mail client using the shared HTTP client.
func New(httpClient *fetch.Client) *Client {
	return &Client{http: httpClient, url: apiURL}
}

// Fetch retrieves all mail items for the token's account.
func (c *Client) Fetch(ctx context.Context, apiKey string) ([]Item, error) {
	var resp apiResponse
	if err := c.http.GetJSON(ctx, c.url, apiKey, &resp); err != nil {
		return nil, fmt.Errorf("mail: %w", err)
	}
	return resp.Mail, nil
}

// Bucket classifies an upstream status string. The upstream strings are
// free-form ("Shipped via USPS!", "Mailed!", ...), so classification is
// substring-based and deliberately forgiving.
func Bucket(status string) StatusBucket {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "shipped"),
		strings.Contains(s, "mailed"),
		strings.Contains(s, "printed"):
		return BucketShipped
	case strings.Contains(s, "pending"):
		return BucketPending
	case strings.Contains(s, "received"):
		return BucketReceived
	default:
		return BucketOther
	}
}

// TypeLabel renders the snake_case mail type for display.
func TypeLabel(item Item) string {
	return strings.ReplaceAll(item.Type, "_", " ")
}

// Title returns the item title or a placeholder.
func Title(item Item) string {
	if item.Title == "" {
		return "Untitled"
	}
	return item.Title
}

// FormatTimestamp renders an API timestamp for display, falling back to
// the raw string when it doesn't parse.
func FormatTimestamp(s string) string {
	if t, ok := temporal.ParseInstant(s); ok {
		return t.Format("Jan 2, 2006, 3:04 PM")
	}
	return s
}
