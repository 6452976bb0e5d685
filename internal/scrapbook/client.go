// Package scrapbook is a read-only client for the community scrapbook:
// one user's profile plus their stream of posts and reactions.
package scrapbook

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/clubdeck/clubdeck/internal/fetch"
)

const apiBase = "https://scrapbook.hackclub.com/api/users/"

// Profile is the scrapbook account header.
type Profile struct {
	ID          string `json:"id"`
	SlackID     string `json:"slackID"`
	Username    string `json:"username"`
	StreakCount int    `json:"streakCount"`
	MaxStreaks  int    `json:"maxStreaks"`
	Website     string `json:"website,omitempty"`
	GitHub      string `json:"github,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Timezone    string `json:"timezone"`
	Pronouns    string `json:"pronouns,omitempty"`
}

// Post is one scrapbook update.
type Post struct {
	ID          string     `json:"id"`
	Timestamp   int64      `json:"timestamp"` // Unix seconds
	SlackURL    string     `json:"slackUrl"`
	PostedAt    string     `json:"postedAt"`
	Text        string     `json:"text"`
	Attachments []string   `json:"attachments"`
	Reactions   []Reaction `json:"reactions"`
}

// Reaction is an emoji response on a post. Custom emoji have a name and
// image URL; standard ones carry the literal character.
type Reaction struct {
	Name         string   `json:"name"`
	UsersReacted []string `json:"usersReacted"`
	URL          string   `json:"url,omitempty"`
	Char         string   `json:"char,omitempty"`
}

// UserData is the full API response for one user.
type UserData struct {
	Profile Profile `json:"profile"`
	Posts   []Post  `json:"posts"`
}

// Client fetches scrapbook user pages.
type Client struct {
	http *fetch.Client
	base string
}

// New creates a scrapbook client using the shared HTTP client.
func New(httpClient *fetch.Client) *Client {
	return &Client{http: httpClient, base: apiBase}
}

// Fetch retrieves a user's profile and posts.
func (c *Client) Fetch(ctx context.Context, username string) (*UserData, error) {
	var data UserData
	if err := c.http.GetJSON(ctx, c.base+url.PathEscape(username), "", &data); err != nil {
		return nil, fmt.Errorf("scrapbook: %w", err)
	}
	return &data, nil
}

// PostedAtTime converts a post's Unix-seconds timestamp to an instant.
func (p Post) PostedAtTime() time.Time {
	return time.Unix(p.Timestamp, 0).UTC()
}

// Display returns what a reaction should render as: the literal emoji
// character when there is one, otherwise :name: style.
func (r Reaction) Display() string {
	if r.Char != "" {
		return r.Char
	}
	return ":" + r.Name + ":"
}
