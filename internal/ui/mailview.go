package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clubdeck/clubdeck/internal/mail"
)

// MailModel renders the physical mail screen. When no API key is
// configured it prompts for one and persists it via the root App.
type MailModel struct {
	client *mail.Client
	apiKey string

	items  []mail.Item
	cursor int

	loading   bool
	err       error
	prompting bool
	prompt    textinput.Model
	spin      spinner.Model

	width  int
	height int
}

// NewMailModel builds the mail screen. An empty apiKey puts the screen in
// prompt mode instead of fetching.
func NewMailModel(client *mail.Client, apiKey string) MailModel {
	prompt := textinput.New()
	prompt.Placeholder = "API key from mail.hackclub.com"
	prompt.EchoMode = textinput.EchoPassword
	prompt.CharLimit = 128

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorYellow)

	m := MailModel{client: client, apiKey: apiKey, prompt: prompt, spin: spin}
	if apiKey == "" {
		m.prompting = true
		m.prompt.Focus()
	} else {
		m.loading = true
	}
	return m
}

// Init kicks off the mail fetch when a key is available.
func (m MailModel) Init() tea.Cmd {
	if m.prompting {
		return textinput.Blink
	}
	return tea.Batch(loadMailCmd(m.client, m.apiKey), m.spin.Tick)
}

// APIKey returns the current key, including one just entered at the
// prompt. The App persists changes to config.
func (m MailModel) APIKey() string { return m.apiKey }

// Update handles prompt input, navigation, retry, and fetch results.
func (m MailModel) Update(msg tea.Msg) (MailModel, tea.Cmd) {
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

	case MailLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.items = msg.Items
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			switch msg.String() {
			case "enter":
				key := strings.TrimSpace(m.prompt.Value())
				if key == "" {
					return m, nil
				}
				m.apiKey = key
				m.prompting = false
				m.prompt.Blur()
				m.loading = true
				return m, tea.Batch(loadMailCmd(m.client, m.apiKey), m.spin.Tick)
			}
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "r":
			if m.apiKey != "" {
				m.loading = true
				m.err = nil
				return m, tea.Batch(loadMailCmd(m.client, m.apiKey), m.spin.Tick)
			}
		case "e":
			m.prompting = true
			m.prompt.SetValue("")
			m.prompt.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// View renders the mail list.
func (m MailModel) View() string {
	var b strings.Builder

	if m.prompting {
		b.WriteString("\n" + PromptStyle.Render("  Enter your mail API key:") + "\n\n")
		b.WriteString("  " + m.prompt.View() + "\n")
		return b.String()
	}
	if m.loading {
		return fmt.Sprintf("\n  %s loading mail...\n", m.spin.View())
	}
	if m.err != nil {
		return "\n" + ErrorStyle.Render(fmt.Sprintf("failed to load mail: %v", m.err)) + "\n" +
			CardMeta.Render("  press r to retry, e to change API key") + "\n"
	}
	if len(m.items) == 0 {
		return "\n" + CardMeta.Render("  no mail yet") + "\n"
	}

	start, end := listWindow(m.cursor, len(m.items), m.height, 5)
	for i := start; i < end; i++ {
		it := m.items[i]
		pill := statusBucketPill(mail.Bucket(it.Status))
		lines := []string{
			CardTitle.Render(mail.Title(it)) + "  " + pill,
			CardMeta.Render(mail.TypeLabel(it) + "  ·  " + mail.FormatTimestamp(it.CreatedAt)),
		}
		if it.TrackingNumber != "" {
			lines = append(lines, CardMeta.Render("tracking: "+it.TrackingNumber))
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

func statusBucketPill(bucket mail.StatusBucket) string {
	switch bucket {
	case mail.BucketShipped:
		return lipgloss.NewStyle().Foreground(colorSnow).Background(colorGreen).Padding(0, 1).Render("SHIPPED")
	case mail.BucketPending:
		return lipgloss.NewStyle().Foreground(colorSlate).Background(colorYellow).Padding(0, 1).Render("PENDING")
	case mail.BucketReceived:
		return PillUpcoming.Render("RECEIVED")
	default:
		return PillEnded.Render(strings.ToUpper(string(bucket)))
	}
}
