package page

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/whportal/internal/client/services"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

type LoginPage struct {
	auth    services.AuthService
	nav     Navigator
	dialogs Dialogs
	log     logging.Logger
}

func NewLoginPage(auth services.AuthService, nav Navigator, dialogs Dialogs, log logging.Logger) *LoginPage {
	return &LoginPage{auth: auth, nav: nav, dialogs: dialogs, log: log.With("page", common.PageLogin)}
}

// Submit handles a click on the login button. Every failure collapses into
// the same alert; a click while a login is already running is ignored.
func (p *LoginPage) Submit(ctx context.Context, username, password string) error {
	id, err := p.auth.Login(ctx, username, password)
	if errors.Is(err, common.ErrLoginInProgress) {
		p.log.Debug(ctx, "login submit ignored, request in flight")
		return err
	}
	if err != nil {
		p.log.Error(ctx, "login failed", "username", username, "error", err)
		p.dialogs.Alert(ctx, common.MsgLoginFailed)
		return err
	}

	p.log.Debug(ctx, "login accepted", "role", id.Role.String())
	p.nav.Navigate(ctx, common.PageDashboard)
	return nil
}
