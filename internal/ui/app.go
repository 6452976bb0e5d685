package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clubdeck/clubdeck/internal/config"
	"github.com/clubdeck/clubdeck/internal/feeds"
	"github.com/clubdeck/clubdeck/internal/hackatime"
	"github.com/clubdeck/clubdeck/internal/logging"
	"github.com/clubdeck/clubdeck/internal/mail"
	"github.com/clubdeck/clubdeck/internal/pins"
	"github.com/clubdeck/clubdeck/internal/scrapbook"
	"github.com/clubdeck/clubdeck/internal/stats"
)

// Tab identifies one screen.
type Tab int

const (
	TabEvents Tab = iota
	TabHackathons
	TabYSWS
	TabCoding
	TabStats
	TabMail
	TabScrapbook
)

var tabNames = []string{"Events", "Hackathons", "YSWS", "Coding", "Stats", "Mail", "Scrapbook"}

// App is the root model: one tab per screen, with key routing and config
// persistence for the settings prompts.
type App struct {
	cfg *config.Config
	tab Tab

	events     FeedModel
	hackathons FeedModel
	ysws       FeedModel
	coding     HackatimeModel
	community  StatsModel
	mailbox    MailModel
	scraps     ScrapbookModel

	tickPending bool
	width       int
	height      int
}

// Deps bundles everything the App needs to build its screens.
type Deps struct {
	Config     *config.Config
	Pins       *pins.Store
	Events     feeds.Source
	Hackathons feeds.Source
	YSWS       feeds.Source
	Hackatime  *hackatime.Client
	Stats      *stats.Client
	Mail       *mail.Client
	Scrapbook  *scrapbook.Client
}

// NewApp wires all screens.
func NewApp(d Deps) App {
	return App{
		cfg:        d.Config,
		events:     NewFeedModel(d.Events, d.Pins, d.Config.UI),
		hackathons: NewFeedModel(d.Hackathons, d.Pins, d.Config.UI),
		ysws:       NewFeedModel(d.YSWS, d.Pins, d.Config.UI),
		coding:     NewHackatimeModel(d.Hackatime, d.Config.SlackID),
		community:  NewStatsModel(d.Stats),
		mailbox:    NewMailModel(d.Mail, d.Config.MailAPIKey),
		scraps:     NewScrapbookModel(d.Scrapbook, d.Config.ScrapbookUsername),
	}
}

// Init starts every screen's initial load in parallel.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.events.Init(),
		a.hackathons.Init(),
		a.ysws.Init(),
		a.coding.Init(),
		a.community.Init(),
		a.mailbox.Init(),
		a.scraps.Init(),
	)
}

// Update routes messages to the owning screen and manages the shared
// countdown ticker.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.broadcast(msg)

	case spinner.TickMsg:
		// Spinners carry their own IDs; broadcast so background tabs
		// keep animating while they load.
		return a.broadcast(msg)

	case tea.KeyMsg:
		if !a.capturingInput() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "tab":
				a.tab = (a.tab + 1) % Tab(len(tabNames))
				return a, a.scheduleTick()
			case "shift+tab":
				a.tab = (a.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
				return a, a.scheduleTick()
			case "1", "2", "3", "4", "5", "6", "7":
				a.tab = Tab(msg.String()[0] - '1')
				return a, a.scheduleTick()
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.route(msg)

	case FeedLoaded:
		var cmd tea.Cmd
		switch msg.Source {
		case feeds.SourceEvents:
			a.events = a.events.SetLoaded(msg)
		case feeds.SourceHackathons:
			a.hackathons = a.hackathons.SetLoaded(msg)
		case feeds.SourceYSWS:
			a.ysws = a.ysws.SetLoaded(msg)
		}
		if msg.Err != nil {
			logging.Warn("feed load failed", "source", msg.Source, "err", msg.Err)
		}
		cmd = a.scheduleTick()
		return a, cmd

	case CountdownTick:
		a.tickPending = false
		at := time.Time(msg)
		a.events = a.events.Tick(at)
		a.hackathons = a.hackathons.Tick(at)
		a.ysws = a.ysws.Tick(at)
		return a, a.scheduleTick()

	case HackatimeLoaded:
		var cmd tea.Cmd
		a.coding, cmd = a.coding.Update(msg)
		return a, cmd

	case StatsLoaded:
		var cmd tea.Cmd
		a.community, cmd = a.community.Update(msg)
		return a, cmd

	case MailLoaded:
		var cmd tea.Cmd
		a.mailbox, cmd = a.mailbox.Update(msg)
		return a, cmd

	case ScrapbookLoaded:
		var cmd tea.Cmd
		a.scraps, cmd = a.scraps.Update(msg)
		return a, cmd
	}

	return a.route(msg)
}

// route delivers a message to the current tab's screen, persisting any
// settings the screen changed.
func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.tab {
	case TabEvents:
		a.events, cmd = a.events.Update(msg)
		return a, tea.Batch(cmd, a.scheduleTick())
	case TabHackathons:
		a.hackathons, cmd = a.hackathons.Update(msg)
		return a, tea.Batch(cmd, a.scheduleTick())
	case TabYSWS:
		a.ysws, cmd = a.ysws.Update(msg)
		return a, tea.Batch(cmd, a.scheduleTick())
	case TabCoding:
		a.coding, cmd = a.coding.Update(msg)
		a.persistSetting(&a.cfg.SlackID, a.coding.SlackID())
	case TabStats:
		a.community, cmd = a.community.Update(msg)
	case TabMail:
		a.mailbox, cmd = a.mailbox.Update(msg)
		a.persistSetting(&a.cfg.MailAPIKey, a.mailbox.APIKey())
	case TabScrapbook:
		a.scraps, cmd = a.scraps.Update(msg)
		a.persistSetting(&a.cfg.ScrapbookUsername, a.scraps.Username())
	}
	return a, cmd
}

func (a *App) persistSetting(field *string, value string) {
	if value == "" || *field == value {
		return
	}
	*field = value
	if err := a.cfg.Save(); err != nil {
		logging.Warn("config save failed", "err", err)
	}
}

// broadcast sends a message to every screen; used for window sizing.
func (a App) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.events, cmd = a.events.Update(msg)
	cmds = append(cmds, cmd)
	a.hackathons, cmd = a.hackathons.Update(msg)
	cmds = append(cmds, cmd)
	a.ysws, cmd = a.ysws.Update(msg)
	cmds = append(cmds, cmd)
	a.coding, cmd = a.coding.Update(msg)
	cmds = append(cmds, cmd)
	a.community, cmd = a.community.Update(msg)
	cmds = append(cmds, cmd)
	a.mailbox, cmd = a.mailbox.Update(msg)
	cmds = append(cmds, cmd)
	a.scraps, cmd = a.scraps.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// scheduleTick arms the shared per-second countdown ticker when any feed
// still has an active countdown. The pending flag keeps a single chain.
func (a *App) scheduleTick() tea.Cmd {
	if a.tickPending {
		return nil
	}
	if !a.events.CountdownActive() && !a.hackathons.CountdownActive() && !a.ysws.CountdownActive() {
		return nil
	}
	a.tickPending = true
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return CountdownTick(t)
	})
}

// capturingInput reports whether the current tab has a focused text
// input, in which case root key bindings stay out of the way.
func (a App) capturingInput() bool {
	switch a.tab {
	case TabEvents:
		return a.events.searching
	case TabHackathons:
		return a.hackathons.searching
	case TabYSWS:
		return a.ysws.searching
	case TabCoding:
		return a.coding.prompting
	case TabMail:
		return a.mailbox.prompting
	case TabScrapbook:
		return a.scraps.prompting
	}
	return false
}

// View renders the tab bar, the current screen, and the key-hint bar.
func (a App) View() string {
	var b strings.Builder

	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == a.tab {
			tabs = append(tabs, TabActive.Render(name))
		} else {
			tabs = append(tabs, TabInactive.Render(name))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")

	switch a.tab {
	case TabEvents:
		b.WriteString(a.events.View())
	case TabHackathons:
		b.WriteString(a.hackathons.View())
	case TabYSWS:
		b.WriteString(a.ysws.View())
	case TabCoding:
		b.WriteString(a.coding.View())
	case TabStats:
		b.WriteString(a.community.View())
	case TabMail:
		b.WriteString(a.mailbox.View())
	case TabScrapbook:
		b.WriteString(a.scraps.View())
	}

	b.WriteString("\n")
	b.WriteString(StatusBar.Render(a.hints()))
	return b.String()
}

func (a App) hints() string {
	switch a.tab {
	case TabEvents, TabHackathons:
		return "tab switch · j/k move · p pin · y share · / filter · r refresh · q quit"
	case TabYSWS:
		return "tab switch · j/k move · p pin · s status · y share · / filter · r refresh · q quit"
	case TabCoding, TabMail, TabScrapbook:
		return "tab switch · r refresh · e edit setting · q quit"
	default:
		return "tab switch · r refresh · q quit"
	}
}
