package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clubdeck/clubdeck/internal/hackatime"
	"github.com/clubdeck/clubdeck/internal/mail"
	"github.com/clubdeck/clubdeck/internal/scrapbook"
	"github.com/clubdeck/clubdeck/internal/stats"
)

func context30s() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func loadHackatimeCmd(c *hackatime.Client, slackID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context30s()
		defer cancel()

		now := time.Now()
		all, err := c.AllTime(ctx, slackID)
		if err != nil {
			return HackatimeLoaded{Err: err}
		}
		today, err := c.Today(ctx, slackID, now)
		if err != nil {
			return HackatimeLoaded{Err: err}
		}
		daily := c.DailySeries(ctx, slackID, now)
		weekly := c.WeeklySeries(ctx, slackID, now, 4)
		quarter := c.WeeklySeries(ctx, slackID, now, 12)
		return HackatimeLoaded{Stats: all, Today: today, Daily: daily, Weekly: weekly, Quarter: quarter}
	}
}

func loadStatsCmd(c *stats.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context30s()
		defer cancel()
		combined, err := c.Fetch(ctx)
		return StatsLoaded{Combined: combined, Err: err}
	}
}

func loadMailCmd(c *mail.Client, apiKey string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context30s()
		defer cancel()
		items, err := c.Fetch(ctx, apiKey)
		return MailLoaded{Items: items, Err: err}
	}
}

func loadScrapbookCmd(c *scrapbook.Client, username string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context30s()
		defer cancel()
		data, err := c.Fetch(ctx, username)
		if err != nil {
			return ScrapbookLoaded{Err: err}
		}
		return ScrapbookLoaded{Profile: &data.Profile, Posts: data.Posts, Err: nil}
	}
}
