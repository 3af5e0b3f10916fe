package page

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/client/ui"
)

const testHeader = `<header>
  <button id="hamburgerBtn">=</button>
  <nav id="navMenu">
    <ul class="role-owner"><li><a id="reports" href="reports.html">Reports</a></li></ul>
    <ul class="role-employee"><li>Attendance</li></ul>
    <ul class="role-resident"><li>My bed</li></ul>
  </nav>
  <button id="userMenuBtn"><span id="userName">Guest</span></button>
  <div class="user-dropdown"><a id="logoutLink" href="#">Logout</a></div>
  <a id="brand" href="dashboard.html">WH</a>
</header>`

type fakeAuth struct {
	mu sync.Mutex

	LoginRet  session.Identity
	LoginErr  error
	LogoutErr error
	Sess      session.Session

	LoginCalls  int
	LogoutCalls int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (session.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	if f.LoginErr != nil {
		return session.Identity{}, f.LoginErr
	}
	f.Sess = session.Session{Identity: f.LoginRet, Token: "tok"}
	return f.LoginRet, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutCalls++
	f.Sess = session.Session{}
	return f.LogoutErr
}

func (f *fakeAuth) Me(ctx context.Context) (*session.Identity, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuth) Session(ctx context.Context) session.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Sess
}

func (f *fakeAuth) SetAPIBase(ctx context.Context, base string) error {
	return nil
}

type fakeHeaders struct {
	Err      error
	Fragment string
	Attached int
}

func (f *fakeHeaders) Load(ctx context.Context, attach func(*ui.Header)) error {
	if f.Err != nil {
		return f.Err
	}
	frag := f.Fragment
	if frag == "" {
		frag = testHeader
	}
	h, err := ui.ParseHeader([]byte(frag))
	if err != nil {
		return err
	}
	f.Attached++
	attach(h)
	return nil
}

type recorder struct {
	mu           sync.Mutex
	Pages        []string
	Alerts       []string
	Asked        []string
	ConfirmReply bool
}

func (r *recorder) Navigate(ctx context.Context, page string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Pages = append(r.Pages, page)
}

func (r *recorder) Alert(ctx context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Alerts = append(r.Alerts, msg)
}

func (r *recorder) Confirm(ctx context.Context, msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Asked = append(r.Asked, msg)
	return r.ConfirmReply
}
