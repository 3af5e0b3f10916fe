package page

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/whportal/internal/client/services"
	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/client/ui"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

// Shell is a page that carries the shared header. Everything that queries
// the header runs from the attach callback, after the fragment exists.
type Shell struct {
	name    string
	auth    services.AuthService
	headers services.HeaderService
	nav     Navigator
	dialogs Dialogs
	mode    ui.Mode
	log     logging.Logger
	now     func() time.Time

	mu      sync.Mutex
	header  *ui.Header
	menus   *ui.MenuController
	ready   bool
	session session.Session
}

func NewShell(name string, auth services.AuthService, headers services.HeaderService, nav Navigator, dialogs Dialogs, mode ui.Mode, log logging.Logger) *Shell {
	return &Shell{
		name:    name,
		auth:    auth,
		headers: headers,
		nav:     nav,
		dialogs: dialogs,
		mode:    mode,
		log:     log.With("page", name),
		now:     time.Now,
		menus:   ui.NewMenuController(mode),
	}
}

func (s *Shell) Name() string {
	return s.name
}

// Open loads the header. A header that cannot be loaded leaves the page
// unusable, so the user is sent to the login page.
func (s *Shell) Open(ctx context.Context) error {
	err := s.headers.Load(ctx, func(h *ui.Header) { s.attach(ctx, h) })
	if err != nil {
		s.log.Error(ctx, "header load failed", "error", err)
		s.nav.Navigate(ctx, common.PageLogin)
		return err
	}
	return nil
}

func (s *Shell) attach(ctx context.Context, h *ui.Header) {
	sess := s.auth.Session(ctx)

	s.mu.Lock()
	s.header = h
	s.session = sess
	s.ready = false
	s.menus.CloseAll()
	s.mu.Unlock()

	if err := sess.Check(s.now()); err != nil {
		s.log.Info(ctx, "redirecting to login", "name", sess.Identity.Name, "reason", err)
		s.nav.Navigate(ctx, common.PageLogin)
		return
	}

	s.mu.Lock()
	h.ApplyRole(sess.Role())
	h.SetUserName(sess.Identity.Name)
	s.ready = true
	s.mu.Unlock()

	s.log.Debug(ctx, "header ready", "role", sess.Role().String(), "mode", string(s.mode))
}

// Ready reports whether the header is attached and initialized for a user.
func (s *Shell) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Header returns the attached header, or nil before Open succeeded.
func (s *Shell) Header() *ui.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header
}

// Session returns the session the header was initialized with.
func (s *Shell) Session() session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Click dispatches a click to the menus and mirrors the result onto the
// header markup. It returns the widgets that changed state.
func (s *Shell) Click(t ui.Target) ([]ui.Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, common.ErrNoSession
	}
	changed := s.menus.Click(t)
	for _, w := range changed {
		s.header.SetOpen(w, s.menus.IsOpen(w))
	}
	return changed, nil
}

// ClickElement resolves an element id by containment and clicks it.
func (s *Shell) ClickElement(id string) ([]ui.Widget, error) {
	h := s.Header()
	if h == nil {
		return nil, common.ErrNoSession
	}
	return s.Click(h.Resolve(id))
}

// IsOpen reports whether widget w is currently open.
func (s *Shell) IsOpen(w ui.Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready && s.menus.IsOpen(w)
}

// Enabled reports whether widget w reacts to its trigger in this shell's
// menu mode.
func (s *Shell) Enabled(w ui.Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menus.Enabled(w)
}

// Logout asks for confirmation, then logs out and goes to the login page.
// It reports whether the user confirmed. Even when local cleanup fails the
// user still lands on the login page; the error is returned for logging.
func (s *Shell) Logout(ctx context.Context) (bool, error) {
	if !s.dialogs.Confirm(ctx, common.MsgConfirmLogout) {
		return false, nil
	}

	err := s.auth.Logout(ctx)
	if err != nil {
		s.log.Error(ctx, "logout cleanup failed", "error", err)
	}

	s.mu.Lock()
	s.ready = false
	s.menus.CloseAll()
	if s.header != nil {
		s.header.SetOpen(ui.WidgetNav, false)
		s.header.SetOpen(ui.WidgetUser, false)
	}
	s.session = session.Session{}
	s.mu.Unlock()

	s.nav.Navigate(ctx, common.PageLogin)
	return true, err
}
