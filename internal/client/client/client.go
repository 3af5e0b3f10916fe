package client

import (
	"context"

	"github.com/dmitrijs2005/whportal/internal/client/session"
)

// LoginResult is what a successful login yields.
type LoginResult struct {
	Identity session.Identity
	Token    string
}

type Client interface {
	Login(ctx context.Context, apiBase, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, apiBase, token string) error
	Me(ctx context.Context, apiBase, token string) (*session.Identity, error)
	FetchFragment(ctx context.Context, name string) ([]byte, error)
}
