package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clubdeck/clubdeck/internal/scrapbook"
)

// ScrapbookModel renders one user's scrapbook: profile header with streak
// counts, then the post stream newest-first as served.
type ScrapbookModel struct {
	client   *scrapbook.Client
	username string

	profile *scrapbook.Profile
	posts   []scrapbook.Post
	cursor  int

	loading   bool
	err       error
	prompting bool
	prompt    textinput.Model
	spin      spinner.Model

	width  int
	height int
}

// NewScrapbookModel builds the scrapbook screen. An empty username puts
// the screen in prompt mode instead of fetching.
func NewScrapbookModel(client *scrapbook.Client, username string) ScrapbookModel {
	prompt := textinput.New()
	prompt.Placeholder = "scrapbook username"
	prompt.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorOrange)

	m := ScrapbookModel{client: client, username: username, prompt: prompt, spin: spin}
	if username == "" {
		m.prompting = true
		m.prompt.Focus()
	} else {
		m.loading = true
	}
	return m
}

// Init kicks off the fetch when a username is available.
func (m ScrapbookModel) Init() tea.Cmd {
	if m.prompting {
		return textinput.Blink
	}
	return tea.Batch(loadScrapbookCmd(m.client, m.username), m.spin.Tick)
}

// Username returns the current username, including one just entered at
// the prompt. The App persists changes to config.
func (m ScrapbookModel) Username() string { return m.username }

// Update handles prompt input, navigation, retry, and fetch results.
func (m ScrapbookModel) Update(msg tea.Msg) (ScrapbookModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ScrapbookLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.profile = msg.Profile
		m.posts = msg.Posts
		if m.cursor >= len(m.posts) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			switch msg.String() {
			case "enter":
				name := strings.TrimSpace(m.prompt.Value())
				if name == "" {
					return m, nil
				}
				m.username = name
				m.prompting = false
				m.prompt.Blur()
				m.loading = true
				return m, tea.Batch(loadScrapbookCmd(m.client, m.username), m.spin.Tick)
			}
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.posts)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "r":
			if m.username != "" {
				m.loading = true
				m.err = nil
				return m, tea.Batch(loadScrapbookCmd(m.client, m.username), m.spin.Tick)
			}
		case "e":
			m.prompting = true
			m.prompt.SetValue(m.username)
			m.prompt.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// View renders the profile header and post stream.
func (m ScrapbookModel) View() string {
	var b strings.Builder

	if m.prompting {
		b.WriteString("\n" + PromptStyle.Render("  Enter a scrapbook username:") + "\n\n")
		b.WriteString("  " + m.prompt.View() + "\n")
		return b.String()
	}
	if m.loading {
		return fmt.Sprintf("\n  %s loading scrapbook...\n", m.spin.View())
	}
	if m.err != nil {
		return "\n" + ErrorStyle.Render(fmt.Sprintf("failed to load scrapbook: %v", m.err)) + "\n" +
			CardMeta.Render("  press r to retry, e to change username") + "\n"
	}
	if m.profile == nil {
		return "\n" + CardMeta.Render("  no scrapbook yet") + "\n"
	}

	b.WriteString("\n  " + CardTitle.Render("@"+m.profile.Username))
	if m.profile.Pronouns != "" {
		b.WriteString("  " + CardMeta.Render("("+m.profile.Pronouns+")"))
	}
	b.WriteString("\n")
	b.WriteString("  " + StatValue.Render(fmt.Sprintf("%d", m.profile.StreakCount)) + " " + StatLabel.Render("day streak") +
		"   " + StatValue.Render(fmt.Sprintf("%d", m.profile.MaxStreaks)) + " " + StatLabel.Render("best streak") + "\n\n")

	start, end := listWindow(m.cursor, len(m.posts), m.height, 6)
	for i := start; i < end; i++ {
		post := m.posts[i]
		lines := []string{
			CardMeta.Render(post.PostedAtTime().Local().Format("Jan 2, 2006, 3:04 PM")),
			truncate(post.Text, 200),
		}
		if len(post.Attachments) > 0 {
			lines = append(lines, CardMeta.Render(fmt.Sprintf("%d attachment(s)", len(post.Attachments))))
		}
		if reactions := renderReactions(post.Reactions); reactions != "" {
			lines = append(lines, reactions)
		}
		card := strings.Join(lines, "\n")
		if i == m.cursor {
			b.WriteString(SelectedCard.Render(card))
		} else {
			b.WriteString(NormalCard.Render(card))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderReactions(reactions []scrapbook.Reaction) string {
	if len(reactions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(reactions))
	for _, r := range reactions {
		parts = append(parts, fmt.Sprintf("%s %d", r.Display(), len(r.UsersReacted)))
	}
	style := lipgloss.NewStyle().Foreground(colorYellow)
	return style.Render(strings.Join(parts, "  "))
}
