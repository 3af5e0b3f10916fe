package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/whportal/internal/client/client"
	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

func newAuth(t *testing.T, fc *fakeClient) (AuthService, *session.Manager) {
	t.Helper()
	m, _ := newSessions(t)
	return NewAuthService(fc, m, "http://login.local:8000", 50*time.Millisecond, logging.Discard()), m
}

func TestLogin_Success_StoresIdentity(t *testing.T) {
	fc := &fakeClient{LoginRet: &client.LoginResult{
		Identity: session.Identity{Name: "bob", Username: "bob", Role: session.RoleEmployee},
		Token:    "tok",
	}}
	svc, m := newAuth(t, fc)
	ctx := context.Background()

	id, err := svc.Login(ctx, "bob", "pw")
	require.NoError(t, err)
	assert.Equal(t, "bob", id.Name)

	assert.Equal(t, "http://login.local:8000", fc.LastLoginBase)
	assert.Equal(t, "bob", fc.LastLoginUser)
	assert.Equal(t, "pw", fc.LastLoginPass)

	s := m.Load(ctx)
	assert.Equal(t, "bob", s.Identity.Name)
	assert.Equal(t, session.RoleEmployee, s.Role())
	assert.Equal(t, "tok", s.Token)
}

func TestLogin_Failure_LeavesSessionUntouched(t *testing.T) {
	fc := &fakeClient{LoginErr: client.ErrUnauthorized}
	svc, m := newAuth(t, fc)
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, session.Identity{Name: "prev", Role: session.RoleOwner}, "prev-tok"))

	_, err := svc.Login(ctx, "bob", "wrong")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Contains(t, err.Error(), "login error:")

	s := m.Load(ctx)
	assert.Equal(t, "prev", s.Identity.Name)
	assert.Equal(t, "prev-tok", s.Token)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	fc := &fakeClient{}
	svc, _ := newAuth(t, fc)

	_, err := svc.Login(context.Background(), " ", "pw")
	require.ErrorIs(t, err, common.ErrEmptyCredentials)
	_, err = svc.Login(context.Background(), "bob", "")
	require.ErrorIs(t, err, common.ErrEmptyCredentials)
	assert.Empty(t, fc.LastLoginUser, "backend never called")
}

func TestLogin_OverlappingSubmitRejected(t *testing.T) {
	fc := &fakeClient{
		LoginRet:   &client.LoginResult{Identity: session.Identity{Name: "bob", Role: session.RoleOwner}},
		LoginStart: make(chan struct{}),
		LoginBlock: make(chan struct{}),
	}
	svc, _ := newAuth(t, fc)
	ctx := context.Background()

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = svc.Login(ctx, "bob", "pw")
	}()

	<-fc.LoginStart
	_, err := svc.Login(ctx, "bob", "pw")
	require.ErrorIs(t, err, common.ErrLoginInProgress)

	close(fc.LoginBlock)
	wg.Wait()
	require.NoError(t, firstErr)

	fc.LoginStart, fc.LoginBlock = nil, nil
	_, err = svc.Login(ctx, "bob", "pw")
	require.NoError(t, err, "guard is released after the first login finishes")
}

func TestLogout_AlwaysClearsLocalSession(t *testing.T) {
	tests := []struct {
		name string
		fc   *fakeClient
	}{
		{name: "backend ok", fc: &fakeClient{}},
		{name: "backend 500", fc: &fakeClient{LogoutErr: client.ErrBadStatus}},
		{name: "backend unreachable", fc: &fakeClient{LogoutErr: client.ErrUnavailable}},
		{name: "backend hangs until timeout", fc: &fakeClient{LogoutWait: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuth(t, tt.fc)
			ctx := context.Background()
			require.NoError(t, m.Save(ctx, session.Identity{Name: "Alice", Role: session.RoleOwner}, "tok"))
			require.NoError(t, m.SetAPIBase(ctx, "http://override:9000"))

			start := time.Now()
			require.NoError(t, svc.Logout(ctx))
			assert.Less(t, time.Since(start), 2*time.Second)

			assert.Equal(t, 1, tt.fc.LogoutCalls)
			assert.Equal(t, "tok", tt.fc.LastLogoutTok)
			assert.Equal(t, "http://override:9000", tt.fc.LastLogoutBase)

			s := m.Load(ctx)
			assert.Equal(t, session.Identity{}, s.Identity)
			assert.Empty(t, s.Token)
		})
	}
}

func TestLogout_NoToken_SkipsBackend(t *testing.T) {
	fc := &fakeClient{}
	svc, m := newAuth(t, fc)
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, session.Identity{Name: "Alice"}, ""))

	require.NoError(t, svc.Logout(ctx))
	assert.Zero(t, fc.LogoutCalls)
	assert.Empty(t, m.Load(ctx).Identity.Name)
}

type failingStore struct {
	*session.Manager
}

func (failingStore) Clear(context.Context) error { return errors.New("disk gone") }

func TestLogout_LocalClearFailureIsReturned(t *testing.T) {
	m, _ := newSessions(t)
	svc := NewAuthService(&fakeClient{}, failingStore{m}, "http://x", time.Second, logging.Discard())

	err := svc.Logout(context.Background())
	require.ErrorContains(t, err, "disk gone")
}

func TestMe(t *testing.T) {
	fc := &fakeClient{MeRet: &session.Identity{Name: "Alice", Role: session.RoleOwner}}
	svc, m := newAuth(t, fc)
	ctx := context.Background()

	_, err := svc.Me(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)

	require.NoError(t, m.Save(ctx, session.Identity{Name: "Alice"}, "tok"))
	id, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", id.Name)
	assert.Equal(t, "tok", fc.LastMeTok)
}

func TestSessionAndSetAPIBase(t *testing.T) {
	svc, _ := newAuth(t, &fakeClient{})
	ctx := context.Background()

	assert.Equal(t, "http://api.local:8000", svc.Session(ctx).APIBase)
	require.NoError(t, svc.SetAPIBase(ctx, "http://other"))
	assert.Equal(t, "http://other", svc.Session(ctx).APIBase)
}
