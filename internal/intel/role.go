package intel

import (
	"errors"
	"fmt"
)

// Role is the access level chosen at login.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleAnalyst Role = "Analyst"
	RoleViewer  Role = "Viewer"
)

// ErrUnknownRole is returned for role strings outside Admin/Analyst/Viewer.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a role. An empty value selects Viewer, the login default.
func ParseRole(value string) (Role, error) {
	switch r := Role(value); r {
	case RoleAdmin, RoleAnalyst, RoleViewer:
		return r, nil
	case "":
		return RoleViewer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, value)
	}
}

// CanMutate reports whether the role may change panel state or export.
// Viewers are read-only.
func (r Role) CanMutate() bool {
	return r == RoleAdmin || r == RoleAnalyst
}
