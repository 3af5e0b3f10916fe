package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/whportal/internal/client/client"
	"github.com/dmitrijs2005/whportal/internal/client/config"
	"github.com/dmitrijs2005/whportal/internal/client/page"
	"github.com/dmitrijs2005/whportal/internal/client/services"
	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/client/store"
	"github.com/dmitrijs2005/whportal/internal/client/ui"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

// App is the terminal counterpart of a browser tab: one current page, the
// stored session behind it, and the services pages use.
type App struct {
	config        *config.Config
	log           logging.Logger
	db            *sql.DB
	sessions      *session.Manager
	authService   services.AuthService
	headerService services.HeaderService
	menuMode      ui.Mode

	loginPage *page.LoginPage
	shell     *page.Shell
	current   string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store and wires the HTTP transport, services and
// pages for cfg.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(cfg.PagesBase, cfg.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newApp(cfg, db, apiClient, log, os.Stdin, os.Stdout)
}

func newApp(cfg *config.Config, db *sql.DB, c client.Client, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	mode, err := ui.ParseMode(cfg.MenuMode)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(db, cfg.APIBase, log)
	a := &App{
		config:        cfg,
		log:           log,
		db:            db,
		sessions:      sessions,
		authService:   services.NewAuthService(c, sessions, cfg.APIBase, cfg.LogoutTimeout, log),
		headerService: services.NewHeaderService(c, log),
		menuMode:      mode,
		reader:        bufio.NewReader(in),
		out:           out,
	}
	a.loginPage = page.NewLoginPage(a.authService, a, a, log)
	return a, nil
}

// Run migrates legacy session keys, opens the start page and blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to the WH portal client (type 'help' for commands)")
	a.start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

// start lands on the dashboard when a live session is stored, otherwise on
// the login page.
func (a *App) start(ctx context.Context) {
	if err := a.sessions.MigrateLegacy(ctx); err != nil {
		a.log.Warn(ctx, "legacy session migration failed", "error", err)
	}

	to := common.PageLogin
	if a.authService.Session(ctx).Identity.Name != "" {
		to = common.PageDashboard
	}
	a.Navigate(ctx, to)
}

func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.shell != nil && a.shell.Ready()
}

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		sess := a.shell.Session()
		s = fmt.Sprintf("%s %s ", sess.Identity.Name, sess.Role())
	}
	if a.current != "" {
		s += "@" + a.current
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}
