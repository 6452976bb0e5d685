package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clubdeck/clubdeck/internal/config"
	"github.com/clubdeck/clubdeck/internal/countdown"
	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/feeds/events"
	"github.com/clubdeck/clubdeck/internal/feeds/hackathons"
	"github.com/clubdeck/clubdeck/internal/feeds/ysws"
	"github.com/clubdeck/clubdeck/internal/pins"
	"github.com/clubdeck/clubdeck/internal/temporal"
)

// FeedModel renders one feed screen: a ranked card list with pinning,
// countdowns for pinned future items, and a substring search filter.
type FeedModel struct {
	source feeds.Source
	store  *pins.Store
	prefs  config.UIConfig

	items      []feeds.Item
	pinned     map[string]bool
	countdowns map[string]string
	progress   map[string]ysws.Progress
	now        time.Time

	cursor    int
	loading   bool
	err       error
	flash     string
	searching bool
	search    textinput.Model
	spin      spinner.Model

	width  int
	height int
}

// NewFeedModel builds a feed screen backed by the given source. Pins are
// namespaced by the source type so feeds never share pin state and a
// display-name change cannot orphan persisted pins.
func NewFeedModel(source feeds.Source, store *pins.Store, prefs config.UIConfig) FeedModel {
	search := textinput.New()
	search.Placeholder = "filter"
	search.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorRed)

	return FeedModel{
		source:     source,
		store:      store,
		prefs:      prefs,
		pinned:     store.Load(string(source.Type())),
		countdowns: map[string]string{},
		progress:   map[string]ysws.Progress{},
		now:        time.Now(),
		loading:    true,
		search:     search,
		spin:       spin,
	}
}

func (m FeedModel) fetchCmd() tea.Cmd {
	src := m.source
	return func() tea.Msg {
		ctx, cancel := context30s()
		defer cancel()
		items, err := src.Fetch(ctx)
		return FeedLoaded{Source: src.Type(), Items: items, Err: err}
	}
}

// Init starts the initial fetch and the spinner.
func (m FeedModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spin.Tick)
}

// SetLoaded applies a fetch result for this model's source.
func (m FeedModel) SetLoaded(msg FeedLoaded) FeedModel {
	m.loading = false
	if msg.Err != nil {
		m.err = msg.Err
		return m
	}
	m.err = nil
	m.items = msg.Items
	m.now = time.Now()
	m.refreshCountdowns()
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
	return m
}

// Tick recomputes countdown strings against the tick instant. The root
// App owns the ticker and reschedules while CountdownActive holds.
func (m FeedModel) Tick(at time.Time) FeedModel {
	m.now = at
	m.refreshCountdowns()
	return m
}

// CountdownActive reports whether any pinned item still has a future
// target, i.e. whether the per-second ticker should keep running.
func (m FeedModel) CountdownActive() bool {
	if !m.prefs.ShowCountdown {
		return false
	}
	return countdown.Active(m.items, m.pinned, m.now)
}

func (m *FeedModel) refreshCountdowns() {
	m.countdowns = countdown.Snapshot(m.items, m.pinned, m.now)
}

// Update handles keys for this screen. Tab switching and quit are handled
// by the root App before messages reach here.
func (m FeedModel) Update(msg tea.Msg) (FeedModel, tea.Cmd) {
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

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.search.Blur()
				m.search.SetValue("")
				m.cursor = 0
				return m, nil
			case "enter":
				m.searching = false
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.cursor = 0
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m FeedModel) handleKey(msg tea.KeyMsg) (FeedModel, tea.Cmd) {
	visible := m.visible()
	m.flash = ""
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(visible) > 0 {
			m.cursor = len(visible) - 1
		}
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "p":
		if m.cursor < len(visible) {
			key := visible[m.cursor].Key
			m.pinned = m.store.Toggle(string(m.source.Type()), key)
			m.now = time.Now()
			m.refreshCountdowns()
		}
	case "s":
		if m.source.Type() == feeds.SourceYSWS && m.cursor < len(visible) {
			key := visible[m.cursor].Key
			m.progress[key] = m.progress[key].Next()
		}
	case "y":
		if m.cursor < len(visible) {
			it := visible[m.cursor]
			switch m.source.Type() {
			case feeds.SourceEvents:
				m.flash = events.ShareText(it, m.now)
			case feeds.SourceHackathons:
				m.flash = hackathons.ShareText(it, m.now)
			case feeds.SourceYSWS:
				m.flash = ysws.ShareText(it)
			}
		}
	case "r":
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.fetchCmd(), m.spin.Tick)
	}
	return m, nil
}

// visible returns the ranked items, capped at the configured limit and
// narrowed by the search filter.
func (m FeedModel) visible() []feeds.Item {
	ranked := feeds.Rank(m.items, m.pinned, m.now)
	if m.prefs.ItemLimit > 0 && len(ranked) > m.prefs.ItemLimit {
		ranked = ranked[:m.prefs.ItemLimit]
	}
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return ranked
	}
	var out []feeds.Item
	for _, it := range ranked {
		hay := strings.ToLower(it.Title + " " + it.Summary + " " + it.Leader + " " + it.Location.City + " " + it.Location.Country)
		if strings.Contains(hay, query) {
			out = append(out, it)
		}
	}
	return out
}

// View renders the card list.
func (m FeedModel) View() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(SearchBar.Render("/ " + m.search.View()))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(fmt.Sprintf("\n  %s loading %s...\n", m.spin.View(), m.source.Name()))
		return b.String()
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("failed to load %s: %v", m.source.Name(), m.err)))
		b.WriteString("\n")
		b.WriteString(CardMeta.Render("  press r to retry"))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString("\n" + CardMeta.Render("  nothing here yet") + "\n")
		return b.String()
	}

	start, end := listWindow(m.cursor, len(visible), m.height, 5)
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(visible[i], i == m.cursor))
		b.WriteString("\n")
	}
	if m.flash != "" {
		b.WriteString(CardMeta.Render(truncate(m.flash, 160)))
		b.WriteString("\n")
	}
	return b.String()
}

// listWindow clamps the render range of n cards so the cursor stays on
// screen, given the terminal height and the lines one card occupies.
func listWindow(cursor, n, height, perCard int) (int, int) {
	rows := height - 4
	if rows < perCard {
		rows = perCard
	}
	fit := rows / perCard
	if fit < 1 {
		fit = 1
	}
	start := 0
	if cursor >= fit {
		start = cursor - fit + 1
	}
	end := start + fit
	if end > n {
		end = n
	}
	return start, end
}

func (m FeedModel) renderCard(it feeds.Item, selected bool) string {
	var lines []string

	title := CardTitle.Render(it.Title)
	pills := []string{m.statusPill(it)}
	if it.Status(m.now) != temporal.StatusEnded && m.pinned[it.Key] {
		pills = append(pills, PillPinned.Render("PINNED"))
	}
	if it.AMA {
		pills = append(pills, PillUpcoming.Render("AMA"))
	}
	lines = append(lines, title+"  "+strings.Join(pills, " "))

	if meta := m.metaLine(it); meta != "" {
		lines = append(lines, CardMeta.Render(meta))
	}
	if it.Summary != "" {
		lines = append(lines, CardMeta.Render(truncate(it.Summary, 100)))
	}
	if remaining, ok := m.countdowns[it.Key]; ok && m.prefs.ShowCountdown {
		label := "starts in "
		if it.Start == nil {
			label = "closes in "
		}
		lines = append(lines, CountdownStyle.Render(label+remaining))
	}
	if m.source.Type() == feeds.SourceYSWS {
		p := m.progress[it.Key]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color()))
		lines = append(lines, style.Render(p.Label()))
	}

	card := strings.Join(lines, "\n")
	if selected {
		return SelectedCard.Render(card)
	}
	return NormalCard.Render(card)
}

func (m FeedModel) statusPill(it feeds.Item) string {
	switch it.Status(m.now) {
	case temporal.StatusLive:
		return PillLive.Render("LIVE")
	case temporal.StatusEnded:
		return PillEnded.Render("ENDED")
	default:
		return PillUpcoming.Render("UPCOMING")
	}
}

func (m FeedModel) metaLine(it feeds.Item) string {
	var parts []string
	switch m.source.Type() {
	case feeds.SourceHackathons:
		switch it.Location.Kind {
		case feeds.LocationInPerson:
			place := it.Location.City
			if it.Location.Country != "" {
				place += ", " + it.Location.Country
			}
			if flag := hackathons.FlagEmoji(it.Location.CountryCode); flag != "" {
				place += " " + flag
			}
			parts = append(parts, place)
		case feeds.LocationOnline:
			parts = append(parts, "Online")
		}
	case feeds.SourceYSWS:
		parts = append(parts, "Deadline: "+it.RawDeadline)
	}
	if it.Leader != "" {
		parts = append(parts, "led by "+it.Leader)
	}
	if it.Start != nil {
		parts = append(parts, it.Start.Local().Format("Jan 2, 3:04 PM"))
	}
	return strings.Join(parts, "  ·  ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
