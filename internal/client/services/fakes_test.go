package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/whportal/internal/client/client"
	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/client/store"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	mu sync.Mutex

	LoginRet   *client.LoginResult
	LoginErr   error
	LoginBlock chan struct{}
	LoginStart chan struct{}

	LogoutErr  error
	LogoutWait bool

	MeRet *session.Identity
	MeErr error

	FragmentRet []byte
	FragmentErr error

	LastLoginBase  string
	LastLoginUser  string
	LastLoginPass  string
	LogoutCalls    int
	LastLogoutBase string
	LastLogoutTok  string
	LastMeTok      string
	LastFragment   string
}

func (f *fakeClient) Login(ctx context.Context, apiBase, username, password string) (*client.LoginResult, error) {
	f.mu.Lock()
	f.LastLoginBase, f.LastLoginUser, f.LastLoginPass = apiBase, username, password
	start, block := f.LoginStart, f.LoginBlock
	f.mu.Unlock()

	if start != nil {
		close(start)
	}
	if block != nil {
		<-block
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context, apiBase, token string) error {
	f.mu.Lock()
	f.LogoutCalls++
	f.LastLogoutBase, f.LastLogoutTok = apiBase, token
	f.mu.Unlock()

	if f.LogoutWait {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.LogoutErr
}

func (f *fakeClient) Me(ctx context.Context, apiBase, token string) (*session.Identity, error) {
	f.LastMeTok = token
	return f.MeRet, f.MeErr
}

func (f *fakeClient) FetchFragment(ctx context.Context, name string) ([]byte, error) {
	f.LastFragment = name
	return f.FragmentRet, f.FragmentErr
}

func newSessions(t *testing.T) (*session.Manager, *sql.DB) {
	t.Helper()
	db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewManager(db, "http://api.local:8000", logging.Discard()), db
}
