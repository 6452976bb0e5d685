package ui

import "github.com/charmbracelet/lipgloss"

// Hack Club brand palette.
var (
	colorRed    = lipgloss.Color("#ec3750")
	colorOrange = lipgloss.Color("#ff8c37")
	colorYellow = lipgloss.Color("#f1c40f")
	colorGreen  = lipgloss.Color("#33d6a6")
	colorBlue   = lipgloss.Color("#338eda")
	colorMuted  = lipgloss.Color("#8492a6")
	colorSnow   = lipgloss.Color("#f9fafc")
	colorSlate  = lipgloss.Color("#3c4858")
)

// TabActive styles the selected tab in the top bar.
var TabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorSnow).
	Background(colorRed).
	Padding(0, 1)

// TabInactive styles the remaining tabs.
var TabInactive = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// SelectedCard highlights the card under the cursor.
var SelectedCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorRed).
	Padding(0, 1)

// NormalCard styles an unselected card.
var NormalCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSlate).
	Padding(0, 1)

// CardTitle styles the item title line.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorSnow)

// CardMeta styles secondary lines inside a card.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorMuted)

// PillLive styles the live status pill.
var PillLive = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorSnow).
	Background(colorRed).
	Padding(0, 1)

// PillUpcoming styles the upcoming status pill.
var PillUpcoming = lipgloss.NewStyle().
	Foreground(colorSnow).
	Background(colorBlue).
	Padding(0, 1)

// PillEnded styles the ended status pill.
var PillEnded = lipgloss.NewStyle().
	Foreground(colorSnow).
	Background(colorMuted).
	Padding(0, 1)

// PillPinned marks pinned cards.
var PillPinned = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorSlate).
	Background(colorYellow).
	Padding(0, 1)

// CountdownStyle styles the live countdown line.
var CountdownStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorGreen)

// StatValue styles big numbers on the stats and coding screens.
var StatValue = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorGreen)

// StatLabel styles the caption under a stat value.
var StatLabel = lipgloss.NewStyle().
	Foreground(colorMuted)

// StatusBar styles the bottom key-hint bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(colorSnow).
	Background(colorSlate).
	Padding(0, 1)

// ErrorStyle renders fetch failures.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorRed).
	Padding(0, 1)

// SearchBar styles the filter input line.
var SearchBar = lipgloss.NewStyle().
	Foreground(colorSnow).
	Background(colorSlate).
	Padding(0, 1)

// PromptStyle styles settings prompts.
var PromptStyle = lipgloss.NewStyle().
	Foreground(colorOrange).
	Bold(true)
