package cli

import (
	"context"

	"github.com/dmitrijs2005/whportal/internal/client/page"
	"github.com/dmitrijs2005/whportal/internal/common"
)

var (
	_ page.Navigator = (*App)(nil)
	_ page.Dialogs   = (*App)(nil)
)

// Navigate replaces the current page. Every page other than the login page
// carries the header, so it gets a fresh Shell that loads it. A Shell may
// navigate again from inside Open; the last navigation wins.
func (a *App) Navigate(ctx context.Context, to string) {
	a.log.Debug(ctx, "navigate", "from", a.current, "to", to)
	a.current = to
	printlnFn("->", to)

	if to == common.PageLogin {
		a.shell = nil
		return
	}

	sh := page.NewShell(to, a.authService, a.headerService, a, a, a.menuMode, a.log)
	a.shell = sh
	_ = sh.Open(ctx)
}

func (a *App) Alert(ctx context.Context, msg string) {
	printlnFn("[!]", msg)
}

func (a *App) Confirm(ctx context.Context, msg string) bool {
	return confirm(a.reader, msg, a.out)
}
