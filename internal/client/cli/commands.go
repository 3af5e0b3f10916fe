package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/whportal/internal/client/ui"
	"github.com/dmitrijs2005/whportal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login moves to the login page if needed, prompts for credentials and
// submits them. A failed submit has already been alerted, so only input
// errors are returned.
func (a *App) Login(ctx context.Context) error {
	if a.current != common.PageLogin {
		a.Navigate(ctx, common.PageLogin)
	}

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	_ = a.loginPage.Submit(ctx, userName, string(password))
	return nil
}

// Logout runs the header's logout action on the current page.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNoSession
	}
	ok, err := a.shell.Logout(ctx)
	if !ok {
		printlnFn("Logout cancelled")
	}
	return err
}

// Open navigates to a page by name; the .html suffix is optional.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: open <page>")
	}
	to := args[0]
	if !strings.HasSuffix(to, ".html") {
		to += ".html"
	}
	if to == common.PageHeader {
		return fmt.Errorf("%s is a fragment, not a page", to)
	}
	a.Navigate(ctx, to)
	return nil
}

// Header prints the header state, or its markup with --html.
func (a *App) Header(ctx context.Context, args []string) error {
	if a.shell == nil || a.shell.Header() == nil {
		return fmt.Errorf("%s has no header", a.current)
	}
	h := a.shell.Header()

	if len(args) > 0 && args[0] == "--html" {
		s, err := h.Render()
		if err != nil {
			return err
		}
		printlnFn(s)
		return nil
	}

	roles := make([]string, 0, 1)
	for _, r := range h.VisibleRoles() {
		roles = append(roles, r.String())
	}
	if len(roles) == 0 {
		roles = append(roles, "none")
	}

	printlnFn("User:", h.UserName())
	printlnFn("Sections:", strings.Join(roles, ", "))
	for _, w := range []ui.Widget{ui.WidgetNav, ui.WidgetUser} {
		if !a.shell.Enabled(w) {
			printlnFn(fmt.Sprintf("%s: disabled", w))
			continue
		}
		printlnFn(fmt.Sprintf("%s: %s", w, openState(h.IsOpen(w))))
	}
	return nil
}

// Click clicks a named target or, with a leading '#', an element by id.
// Clicking the logout link runs the logout action.
func (a *App) Click(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: click <hamburger|nav|usermenu|dropdown|outside|#element-id>")
	}
	if !a.isLoggedIn() {
		return common.ErrNoSession
	}

	var (
		changed []ui.Widget
		err     error
	)
	if id, ok := strings.CutPrefix(args[0], "#"); ok {
		changed, err = a.shell.ClickElement(id)
		if err == nil && id == ui.IDLogout {
			defer func() { report(a.Logout(ctx)) }()
		}
	} else {
		t, ok := ui.ParseTarget(args[0])
		if !ok {
			return fmt.Errorf("unknown click target %q", args[0])
		}
		changed, err = a.shell.Click(t)
	}
	if err != nil {
		return err
	}

	for _, w := range changed {
		printlnFn(fmt.Sprintf("%s: %s", w, openState(a.shell.IsOpen(w))))
	}
	return nil
}

// WhoAmI shows the stored session and, when a token is stored, what the
// backend thinks of it.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.authService.Session(ctx)
	if s.Identity.Name == "" {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn("Name:", s.Identity.Name)
	printlnFn("Role:", s.Role())
	if s.Identity.Username != "" {
		printlnFn("Username:", s.Identity.Username)
	}
	if exp, ok := s.ExpiresAt(); ok {
		printlnFn("Session expires:", humanize.Time(exp))
	}
	printlnFn("API base:", s.APIBase)

	if s.Token == "" {
		return nil
	}
	id, err := a.authService.Me(ctx)
	if err != nil {
		printlnFn("Server check failed:", err)
		return nil
	}
	printlnFn(fmt.Sprintf("Server: %s (%s)", id.Name, id.Role))
	return nil
}

// APIBase shows the API origin used for session calls, or stores an
// override. "apibase -" removes the override.
func (a *App) APIBase(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("API base:", a.sessions.APIBase(ctx))
		return nil
	}

	base := args[0]
	if base == "-" {
		base = ""
	}
	if err := a.authService.SetAPIBase(ctx, base); err != nil {
		return err
	}
	printlnFn("API base:", a.sessions.APIBase(ctx))
	return nil
}

// Storage lists the locally stored keys, token masked.
func (a *App) Storage(ctx context.Context) error {
	entries, err := a.sessions.Entries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printlnFn("Storage is empty")
		return nil
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		printlnFn(fmt.Sprintf("%s=%s", k, entries[k]))
	}
	return nil
}

// Reset forgets everything stored locally, including the API base
// override, and returns to the login page. The backend is not notified.
func (a *App) Reset(ctx context.Context) error {
	if !a.Confirm(ctx, "Remove all locally stored data?") {
		printlnFn("Reset cancelled")
		return nil
	}
	if err := a.sessions.Reset(ctx); err != nil {
		return err
	}
	a.Navigate(ctx, common.PageLogin)
	return nil
}

func openState(open bool) string {
	if open {
		return ui.Open.String()
	}
	return ui.Closed.String()
}
