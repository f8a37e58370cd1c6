package domain

import "fmt"

// Role is the closed set of actor kinds. It decides data visibility and
// whether the actor may log time.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleAdmin, RoleFreelancer, RoleClient}

// ParseRole converts a stored or user-supplied string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFreelancer, RoleClient:
		return true
	}
	return false
}

// CanLogTime reports whether the role may create time entries.
func (r Role) CanLogTime() bool {
	return r == RoleAdmin || r == RoleFreelancer
}

func (r Role) String() string { return string(r) }
