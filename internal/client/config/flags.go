package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/whportal/internal/flagx"
)

// parseFlags populates cfg from the short flags listed in the package doc.
// Only those flags are looked at, so -c/-config and anything else in args
// does not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-p", "-d", "-m", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBase, "a", cfg.APIBase, "backend API base")
	fs.StringVar(&cfg.PagesBase, "p", cfg.PagesBase, "pages base URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local session database")
	fs.StringVar(&cfg.MenuMode, "m", cfg.MenuMode, "menu mode: hamburger, dropdown, both")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -t only takes whole seconds; an earlier sub-second value survives
	// unless the flag was given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
