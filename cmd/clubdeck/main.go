package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clubdeck/clubdeck/internal/config"
	"github.com/clubdeck/clubdeck/internal/feeds/events"
	"github.com/clubdeck/clubdeck/internal/feeds/hackathons"
	"github.com/clubdeck/clubdeck/internal/feeds/ysws"
	"github.com/clubdeck/clubdeck/internal/fetch"
	"github.com/clubdeck/clubdeck/internal/hackatime"
	"github.com/clubdeck/clubdeck/internal/logging"
	"github.com/clubdeck/clubdeck/internal/mail"
	"github.com/clubdeck/clubdeck/internal/pins"
	"github.com/clubdeck/clubdeck/internal/scrapbook"
	"github.com/clubdeck/clubdeck/internal/stats"
	"github.com/clubdeck/clubdeck/internal/ui"
)

func main() {
	// Data directory: ~/.clubdeck/
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".clubdeck")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to init logging: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.AutoPopulateFromEnv()

	store, err := pins.Open(filepath.Join(dataDir, "pins.db"))
	if err != nil {
		log.Fatalf("Failed to open pin store: %v", err)
	}
	defer store.Close()

	client := fetch.NewClient(30 * time.Second)

	app := ui.NewApp(ui.Deps{
		Config:     cfg,
		Pins:       store,
		Events:     events.New(client),
		Hackathons: hackathons.New(client),
		YSWS:       ysws.New(client),
		Hackatime:  hackatime.New(client),
		Stats:      stats.New(client),
		Mail:       mail.New(client),
		Scrapbook:  scrapbook.New(client),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("program exited", "err", err)
		log.Fatalf("Error running program: %v", err)
	}
}
