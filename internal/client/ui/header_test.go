package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/common"
)

func loadHeader(t *testing.T) *Header {
	t.Helper()
	b, err := os.ReadFile("testdata/header.html")
	require.NoError(t, err)
	h, err := ParseHeader(b)
	require.NoError(t, err)
	return h
}

func TestParseHeader_MissingElements(t *testing.T) {
	_, err := ParseHeader([]byte(`<nav id="navMenu"></nav><span id="userName"></span>`))
	require.ErrorIs(t, err, common.ErrFragmentIncomplete)
	assert.Contains(t, err.Error(), "#hamburgerBtn")
	assert.Contains(t, err.Error(), ".user-dropdown")
	assert.NotContains(t, err.Error(), "#navMenu")
}

func TestApplyRole_ExactlyOneRoleVisible(t *testing.T) {
	for _, role := range session.Roles() {
		t.Run(role.String(), func(t *testing.T) {
			h := loadHeader(t)
			h.ApplyRole(role)
			assert.Equal(t, []session.Role{role}, h.VisibleRoles())
		})
	}
}

func TestApplyRole_GuestHidesAll(t *testing.T) {
	h := loadHeader(t)
	assert.Len(t, h.VisibleRoles(), 3, "markup starts with everything visible")

	for _, role := range []session.Role{session.RoleGuest, session.Role("admin")} {
		h.ApplyRole(role)
		assert.Empty(t, h.VisibleRoles(), "role %q", role)
	}
}

func TestApplyRole_StoredRoleOutsideClosedSetHidesAll(t *testing.T) {
	for _, raw := range []string{
		`{"name":"Eve","role":"residence"}`,
		`{"name":"Eve","role":"Owner"}`,
		`{"name":"Eve","role":" employee "}`,
	} {
		t.Run(raw, func(t *testing.T) {
			id, ok := session.ParseIdentity(raw)
			require.True(t, ok)

			h := loadHeader(t)
			h.ApplyRole(id.Role)
			assert.Empty(t, h.VisibleRoles())
		})
	}
}

func TestApplyRole_SwitchingRoles(t *testing.T) {
	h := loadHeader(t)
	h.ApplyRole(session.RoleOwner)
	h.ApplyRole(session.RoleResident)
	assert.Equal(t, []session.Role{session.RoleResident}, h.VisibleRoles())

	out, err := h.Render()
	require.NoError(t, err)
	assert.Contains(t, out, `<ul class="role-owner" hidden="">`)
	assert.Contains(t, out, `<ul class="role-resident">`)
}

func TestSetUserName(t *testing.T) {
	h := loadHeader(t)
	assert.Equal(t, "Guest", h.UserName())

	h.SetUserName("Alice <admin>")
	assert.Equal(t, "Alice <admin>", h.UserName())

	out, err := h.Render()
	require.NoError(t, err)
	assert.Contains(t, out, `<span id="userName">Alice &lt;admin&gt;</span>`)
}

func TestSetOpen_TogglesClass(t *testing.T) {
	h := loadHeader(t)

	h.SetOpen(WidgetNav, true)
	assert.True(t, h.IsOpen(WidgetNav))
	out, _ := h.Render()
	assert.Contains(t, out, `class="side-nav open"`)

	h.SetOpen(WidgetNav, true)
	out, _ = h.Render()
	assert.Equal(t, 1, strings.Count(out, "open\""), "adding twice keeps one class")

	h.SetOpen(WidgetNav, false)
	assert.False(t, h.IsOpen(WidgetNav))

	h.SetOpen(WidgetUser, true)
	h.SetOpen(WidgetUser, false)
	out, _ = h.Render()
	assert.Contains(t, out, `<div class="user-dropdown">`)
}

func TestResolve_ContainmentChecks(t *testing.T) {
	h := loadHeader(t)

	tests := map[string]Target{
		"hamburgerBtn": TargetHamburger,
		"navMenu":      TargetNavMenu,
		"ownerReports": TargetNavMenu,
		"homeLink":     TargetNavMenu,
		"userMenuBtn":  TargetUserMenuButton,
		"userName":     TargetUserMenuButton,
		"logoutLink":   TargetUserDropdown,
		"brand":        TargetOutside,
		"nope":         TargetOutside,
	}
	for id, want := range tests {
		assert.Equal(t, want, h.Resolve(id), "id %q", id)
	}
}

func TestRender_WrapsInContainer(t *testing.T) {
	h := loadHeader(t)
	out, err := h.Render()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<div id="menu-container">`))
	assert.True(t, strings.HasSuffix(out, `</div>`))
}
