package client

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/whportal/internal/client/session"
)

// guestDTO mirrors the identity object the backend returns from /auth/me and
// nests under "guest" in the login response.
type guestDTO struct {
	GuestID   string  `json:"guest_id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      *string `json:"role"`
	ExpiresAt string  `json:"expires_at"`
}

// loginDTO accepts both the flat {"role","username"} shape and the
// {"access_token","expires_at","guest":{...}} shape.
type loginDTO struct {
	guestDTO
	AccessToken string    `json:"access_token"`
	Guest       *guestDTO `json:"guest"`
}

func (d *loginDTO) result() (*LoginResult, error) {
	g := d.guestDTO
	if d.Guest != nil {
		g = *d.Guest
		if g.ExpiresAt == "" {
			g.ExpiresAt = d.ExpiresAt
		}
	}
	id, err := g.identity()
	if err != nil {
		return nil, err
	}
	return &LoginResult{Identity: id, Token: d.AccessToken}, nil
}

// identity requires a role and some kind of name. The display name falls
// back to the username, the username to the email.
func (g *guestDTO) identity() (session.Identity, error) {
	if g.Role == nil {
		return session.Identity{}, fmt.Errorf("%w: no role", ErrBadResponse)
	}
	username := g.Username
	if username == "" {
		username = g.Email
	}
	name := g.Name
	if name == "" {
		name = username
	}
	if name == "" {
		return session.Identity{}, fmt.Errorf("%w: no name or username", ErrBadResponse)
	}

	id := session.Identity{
		Name:     name,
		Role:     session.RoleFromBackend(*g.Role),
		Username: username,
		Email:    g.Email,
		GuestID:  g.GuestID,
	}
	if t, err := time.Parse(time.RFC3339, g.ExpiresAt); err == nil {
		t = t.UTC()
		id.ExpiresAt = &t
	}
	return id, nil
}
