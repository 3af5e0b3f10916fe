package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/whportal/internal/flagx"
)

// duration unmarshals from "3s"-style strings or integer nanoseconds.
type duration time.Duration

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*d = duration(time.Duration(x))
	case string:
		p, err := time.ParseDuration(x)
		if err != nil {
			return err
		}
		*d = duration(p)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	APIBase        string   `json:"api_base"`
	PagesBase      string   `json:"pages_base"`
	DBPath         string   `json:"db_path"`
	MenuMode       string   `json:"menu_mode"`
	RequestTimeout duration `json:"request_timeout"`
	LogoutTimeout  duration `json:"logout_timeout"`
	LogLevel       string   `json:"log_level"`
}

// parseJSON overlays cfg with the non-empty values of the file named by
// -c / -config. No flag means nothing to do.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.APIBase, jc.APIBase)
	setString(&cfg.PagesBase, jc.PagesBase)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.MenuMode, jc.MenuMode)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout)
	}
	if jc.LogoutTimeout > 0 {
		cfg.LogoutTimeout = time.Duration(jc.LogoutTimeout)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
