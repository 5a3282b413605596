package model

import "strings"

// Role classifies a user's access level.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// ParseRole normalizes raw input to a canonical Role. It reports false for
// anything outside the closed set.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStudent:
		return RoleStudent, true
	case RoleInstructor:
		return RoleInstructor, true
	default:
		return "", false
	}
}

// Prefix returns the three-letter abbreviation embedded in external user ids.
func (r Role) Prefix() string {
	switch r {
	case RoleAdmin:
		return "adm"
	case RoleStudent:
		return "stu"
	case RoleInstructor:
		return "ins"
	default:
		return "usr"
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent || r == RoleInstructor
}
