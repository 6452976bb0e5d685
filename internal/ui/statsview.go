package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clubdeck/clubdeck/internal/stats"
)

// StatsModel renders the community stats screen: Slack membership counts
// and HCB finance totals as a card grid.
type StatsModel struct {
	client   *stats.Client
	combined *stats.Combined

	loading bool
	err     error
	spin    spinner.Model
	width   int
}

// NewStatsModel builds the community stats screen.
func NewStatsModel(client *stats.Client) StatsModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorBlue)
	return StatsModel{client: client, loading: true, spin: spin}
}

// Init starts the stats fetch.
func (m StatsModel) Init() tea.Cmd {
	return tea.Batch(loadStatsCmd(m.client), m.spin.Tick)
}

// Update handles fetch results and retry.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
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

	case StatsLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.combined = msg.Combined
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			m.err = nil
			return m, tea.Batch(loadStatsCmd(m.client), m.spin.Tick)
		}
	}
	return m, nil
}

// View renders the card grid.
func (m StatsModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s loading community stats...\n", m.spin.View())
	}
	if m.err != nil {
		return "\n" + ErrorStyle.Render(fmt.Sprintf("failed to load community stats: %v", m.err)) + "\n" +
			CardMeta.Render("  press r to retry") + "\n"
	}
	if m.combined == nil {
		return "\n" + CardMeta.Render("  no stats yet") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, card := range stats.Cards(m.combined) {
		b.WriteString("  " + StatValue.Render(card.Value) + " " + StatLabel.Render(card.Label) + "\n")
	}
	return b.String()
}
