package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/whportal/internal/client/ui"
)

// Config holds runtime settings for the portal client.
type Config struct {
	APIBase        string        `env:"API_BASE"`
	PagesBase      string        `env:"PAGES_BASE"`
	DBPath         string        `env:"DB_PATH"`
	MenuMode       string        `env:"MENU_MODE"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogoutTimeout  time.Duration `env:"LOGOUT_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBase = "http://localhost:8000"
	c.PagesBase = "http://localhost:8080/"
	c.DBPath = "portal.db"
	c.MenuMode = string(ui.ModeHamburger)
	c.RequestTimeout = 10 * time.Second
	c.LogoutTimeout = 3 * time.Second
	c.LogLevel = "info"
}

// Validate rejects values the client cannot work with and normalizes the rest.
func (c *Config) Validate() error {
	c.APIBase = strings.TrimRight(strings.TrimSpace(c.APIBase), "/")
	if c.APIBase == "" {
		return fmt.Errorf("api base is empty")
	}
	if c.PagesBase == "" {
		return fmt.Errorf("pages base is empty")
	}
	if !strings.HasSuffix(c.PagesBase, "/") {
		c.PagesBase += "/"
	}

	mode, err := ui.ParseMode(c.MenuMode)
	if err != nil {
		return err
	}
	c.MenuMode = string(mode)

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.LogoutTimeout <= 0 {
		return fmt.Errorf("logout timeout must be positive")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then JSON, then environment,
// then flags found in args (usually os.Args[1:]). Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
