package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clubdeck/clubdeck/internal/hackatime"
)

// HackatimeModel renders coding stats: all-time totals, today, and
// daily/weekly bar charts. When no Slack ID is configured it prompts for
// one and persists it via the root App.
type HackatimeModel struct {
	client  *hackatime.Client
	slackID string

	stats   *hackatime.Stats
	today   *hackatime.Stats
	daily   []hackatime.Point
	weekly  []hackatime.Point
	quarter []hackatime.Point

	loading   bool
	err       error
	prompting bool
	prompt    textinput.Model
	spin      spinner.Model

	width int
}

// NewHackatimeModel builds the coding-stats screen. An empty slackID puts
// the screen in prompt mode instead of fetching.
func NewHackatimeModel(client *hackatime.Client, slackID string) HackatimeModel {
	prompt := textinput.New()
	prompt.Placeholder = "U0123456789"
	prompt.CharLimit = 32

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorGreen)

	m := HackatimeModel{
		client:  client,
		slackID: slackID,
		prompt:  prompt,
		spin:    spin,
	}
	if slackID == "" {
		m.prompting = true
		m.prompt.Focus()
	} else {
		m.loading = true
	}
	return m
}

// Init kicks off the stats fetch when a Slack ID is available.
func (m HackatimeModel) Init() tea.Cmd {
	if m.prompting {
		return textinput.Blink
	}
	return tea.Batch(loadHackatimeCmd(m.client, m.slackID), m.spin.Tick)
}

// SlackID returns the current Slack ID, including one just entered at the
// prompt. The App persists changes to config.
func (m HackatimeModel) SlackID() string { return m.slackID }

// Update handles prompt input, retry, and fetch results.
func (m HackatimeModel) Update(msg tea.Msg) (HackatimeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case HackatimeLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.stats = msg.Stats
		m.today = msg.Today
		m.daily = msg.Daily
		m.weekly = msg.Weekly
		m.quarter = msg.Quarter
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			switch msg.String() {
			case "enter":
				id := strings.TrimSpace(m.prompt.Value())
				if id == "" {
					return m, nil
				}
				m.slackID = id
				m.prompting = false
				m.prompt.Blur()
				m.loading = true
				return m, tea.Batch(loadHackatimeCmd(m.client, m.slackID), m.spin.Tick)
			}
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "r":
			if m.slackID != "" {
				m.loading = true
				m.err = nil
				return m, tea.Batch(loadHackatimeCmd(m.client, m.slackID), m.spin.Tick)
			}
		case "e":
			m.prompting = true
			m.prompt.SetValue(m.slackID)
			m.prompt.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// View renders the stats screen.
func (m HackatimeModel) View() string {
	var b strings.Builder

	if m.prompting {
		b.WriteString("\n" + PromptStyle.Render("  Enter your Slack ID for Hackatime:") + "\n\n")
		b.WriteString("  " + m.prompt.View() + "\n")
		return b.String()
	}
	if m.loading {
		b.WriteString(fmt.Sprintf("\n  %s loading coding stats...\n", m.spin.View()))
		return b.String()
	}
	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render(fmt.Sprintf("failed to load coding stats: %v", m.err)) + "\n")
		b.WriteString(CardMeta.Render("  press r to retry, e to change Slack ID") + "\n")
		return b.String()
	}
	if m.stats == nil {
		return "\n" + CardMeta.Render("  no stats yet") + "\n"
	}

	b.WriteString("\n")
	b.WriteString("  " + StatValue.Render(m.stats.HumanReadableTotal) + " " + StatLabel.Render("all time") + "\n")
	if m.today != nil {
		b.WriteString("  " + StatValue.Render(m.today.HumanReadableTotal) + " " + StatLabel.Render("today") + "\n")
	}
	b.WriteString("  " + StatValue.Render(m.stats.HumanReadableDailyAverage) + " " + StatLabel.Render("daily average") + "\n")
	b.WriteString("  " + StatValue.Render(hackatime.FavoriteLanguage(m.stats)) + " " + StatLabel.Render("favorite language") + "\n")

	if len(m.daily) > 0 {
		b.WriteString("\n" + StatLabel.Render("  Last 7 days") + "\n")
		b.WriteString(renderBars(m.daily))
	}
	if len(m.weekly) > 0 {
		b.WriteString("\n" + StatLabel.Render("  Last 4 weeks") + "\n")
		b.WriteString(renderBars(m.weekly))
	}
	if len(m.quarter) > 0 {
		b.WriteString("\n" + StatLabel.Render("  Last 12 weeks") + "\n")
		b.WriteString(renderBars(m.quarter))
	}
	return b.String()
}

// renderBars draws a horizontal bar per point, scaled to the busiest one.
func renderBars(points []hackatime.Point) string {
	max := 0.0
	for _, p := range points {
		if p.Hours > max {
			max = p.Hours
		}
	}
	var b strings.Builder
	for _, p := range points {
		width := 0
		if max > 0 {
			width = int(p.Hours / max * 30)
		}
		bar := strings.Repeat("█", width)
		b.WriteString(fmt.Sprintf("  %-6s %s %.1fh\n", p.Label, StatValue.Render(bar), p.Hours))
	}
	return b.String()
}
