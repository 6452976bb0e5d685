package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration.
// User-entered identifiers are opaque strings stored verbatim.
type Config struct {
	// Hackatime is keyed by the user's Slack member ID
	SlackID string `json:"slack_id"`

	// Bearer token for the mail API
	MailAPIKey string `json:"mail_api_key,omitempty"`

	// Scrapbook profile to display
	ScrapbookUsername string `json:"scrapbook_username"`

	// UI preferences
	UI UIConfig `json:"ui"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	ItemLimit     int  `json:"item_limit"`
	ShowCountdown bool `json:"show_countdown"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ItemLimit:     200,
			ShowCountdown: true,
		},
	}
}

// Path returns the path to the config file
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".clubdeck", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	if cfg.UI.ItemLimit <= 0 {
		cfg.UI.ItemLimit = DefaultConfig().UI.ItemLimit
	}

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // Restrictive permissions for the API key
}

// AutoPopulateFromEnv fills in identifiers from environment variables
func (c *Config) AutoPopulateFromEnv() {
	if v := os.Getenv("HACKATIME_SLACK_ID"); v != "" {
		c.SlackID = v
	}
	if v := os.Getenv("HACKCLUB_MAIL_API_KEY"); v != "" {
		c.MailAPIKey = v
	}
	if v := os.Getenv("SCRAPBOOK_USERNAME"); v != "" {
		c.ScrapbookUsername = v
	}
}
