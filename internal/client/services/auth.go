// Package services contains application services for the portal client.
// This file defines the authentication service: login, best-effort logout,
// the server-side identity probe and access to the stored session.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrijs2005/whportal/internal/client/client"
	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

// AuthService defines the authentication operations pages rely on.
//
// Contract:
//   - Login: post credentials, store the returned identity. Only one login
//     may be in flight; overlapping calls fail with common.ErrLoginInProgress.
//   - Logout: notify the backend if a token is stored, then always clear the
//     local session. Remote failures are logged, never returned.
//   - Me: ask the backend who the stored token belongs to.
//   - Session: the stored session context.
//   - SetAPIBase: store or remove the API origin override.
type AuthService interface {
	Login(ctx context.Context, username, password string) (session.Identity, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*session.Identity, error)
	Session(ctx context.Context) session.Session
	SetAPIBase(ctx context.Context, base string) error
}

// SessionStore is the part of session.Manager the service needs.
type SessionStore interface {
	Load(ctx context.Context) session.Session
	Save(ctx context.Context, id session.Identity, token string) error
	Clear(ctx context.Context) error
	SetAPIBase(ctx context.Context, base string) error
}

type authService struct {
	client        client.Client
	sessions      SessionStore
	log           logging.Logger
	loginBase     string
	logoutTimeout time.Duration
	inFlight      *semaphore.Weighted
}

// NewAuthService binds the service to a transport and a session store.
// loginBase is the configured API origin: the stored override only applies
// to calls made on behalf of an existing session.
func NewAuthService(c client.Client, sessions SessionStore, loginBase string, logoutTimeout time.Duration, log logging.Logger) AuthService {
	return &authService{
		client:        c,
		sessions:      sessions,
		log:           log,
		loginBase:     loginBase,
		logoutTimeout: logoutTimeout,
		inFlight:      semaphore.NewWeighted(1),
	}
}

func (a *authService) Login(ctx context.Context, username, password string) (session.Identity, error) {
	if !a.inFlight.TryAcquire(1) {
		return session.Identity{}, common.ErrLoginInProgress
	}
	defer a.inFlight.Release(1)

	if strings.TrimSpace(username) == "" || password == "" {
		return session.Identity{}, common.ErrEmptyCredentials
	}

	res, err := a.client.Login(ctx, a.loginBase, username, password)
	if err != nil {
		return session.Identity{}, fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.Save(ctx, res.Identity, res.Token); err != nil {
		return session.Identity{}, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "name", res.Identity.Name, "role", res.Identity.Role.String())
	return res.Identity, nil
}

func (a *authService) Logout(ctx context.Context) error {
	s := a.sessions.Load(ctx)

	if s.Token != "" {
		notifyCtx, cancel := context.WithTimeout(ctx, a.logoutTimeout)
		err := a.client.Logout(notifyCtx, s.APIBase, s.Token)
		cancel()
		if err != nil {
			a.log.Warn(ctx, "logout notification failed", "api_base", s.APIBase, "error", err)
		}
	}

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.log.Info(ctx, "logged out", "name", s.Identity.Name)
	return nil
}

func (a *authService) Me(ctx context.Context) (*session.Identity, error) {
	s := a.sessions.Load(ctx)
	if s.Token == "" {
		return nil, common.ErrNoSession
	}
	return a.client.Me(ctx, s.APIBase, s.Token)
}

func (a *authService) Session(ctx context.Context) session.Session {
	return a.sessions.Load(ctx)
}

func (a *authService) SetAPIBase(ctx context.Context, base string) error {
	return a.sessions.SetAPIBase(ctx, base)
}
