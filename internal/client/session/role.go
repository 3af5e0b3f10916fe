package session

import "strings"

// Role is the closed set of roles the header knows how to show.
// The zero value is a guest.
type Role string

const (
	RoleGuest    Role = ""
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
	RoleResident Role = "resident"
)

// Roles lists the roles that own a section of the header, in markup order.
func Roles() []Role {
	return []Role{RoleOwner, RoleEmployee, RoleResident}
}

// ParseRole matches a stored role exactly. Anything outside the closed
// set, including a different casing, is a guest.
func ParseRole(s string) Role {
	switch r := Role(s); r {
	case RoleOwner, RoleEmployee, RoleResident:
		return r
	default:
		return RoleGuest
	}
}

// RoleFromBackend maps a role as the backend reports it. The backend calls
// residents "residence" and is not consistent about casing.
func RoleFromBackend(s string) Role {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "residence" {
		return RoleResident
	}
	return ParseRole(s)
}

func (r Role) String() string {
	if r == RoleGuest {
		return "guest"
	}
	return string(r)
}

// UnmarshalText decodes with ParseRole, so a stored identity never carries
// a role outside the closed set.
func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}
