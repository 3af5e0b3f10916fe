package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/whportal/internal/common"
)

// Identity is the record stored under wh_user.
type Identity struct {
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Username  string     `json:"username,omitempty"`
	Email     string     `json:"email,omitempty"`
	GuestID   string     `json:"guest_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ParseIdentity decodes a stored identity. Empty input, malformed JSON and
// JSON that is not an object all come back as the zero Identity and ok=false.
func ParseIdentity(raw string) (Identity, bool) {
	if raw == "" {
		return Identity{}, false
	}
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return Identity{}, false
	}
	return id, true
}

// Session is the explicit session context handed to page initialization.
type Session struct {
	Identity Identity
	Token    string
	APIBase  string
}

// Check reports why the header may not render: common.ErrNoSession without
// a display name, common.ErrSessionExpired once the expiry has passed.
func (s Session) Check(now time.Time) error {
	if s.Identity.Name == "" {
		return common.ErrNoSession
	}
	if exp, ok := s.ExpiresAt(); ok && !now.Before(exp) {
		return common.ErrSessionExpired
	}
	return nil
}

// Role is the role that drives menu visibility. Unauthenticated sessions
// still report their stored role; gating is the caller's decision.
func (s Session) Role() Role {
	return s.Identity.Role
}

// ExpiresAt prefers the expiry the backend sent at login and falls back to
// the exp claim when the token happens to be a JWT.
func (s Session) ExpiresAt() (time.Time, bool) {
	if s.Identity.ExpiresAt != nil {
		return *s.Identity.ExpiresAt, true
	}
	return tokenExpiry(s.Token)
}

// tokenExpiry reads exp without verifying the signature: the client has no
// key and only uses it to avoid rendering a header for a dead session.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
