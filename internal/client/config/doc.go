// Package config loads runtime configuration for the portal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJSON).
//  3. Optional .env file plus WH_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   backend API base, e.g. http://localhost:8000
//	-p string   base URL the pages (header.html, ...) are served from
//	-d string   path of the local session database
//	-m string   menu interaction mode: hamburger, dropdown or both
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base": "http://localhost:8000",
//	  "pages_base": "http://localhost:8080/",
//	  "db_path": "portal.db",
//	  "menu_mode": "hamburger",
//	  "request_timeout": "10s",
//	  "logout_timeout": "3s",
//	  "log_level": "info"
//	}
package config
