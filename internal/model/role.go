package model

import (
	"errors"
	"strings"
)

// ErrUnknownRole is returned when a role string is not in the recognized set.
var ErrUnknownRole = errors.New("unknown role")

// Role identifies what kind of administrator an account is.
type Role string

const (
	RoleWarden   Role = "warden"
	RoleWatchman Role = "watchman"
)

// DashboardTarget is the client route an authenticated admin is sent to.
type DashboardTarget string

const (
	DashboardWarden   DashboardTarget = "/warden"
	DashboardWatchman DashboardTarget = "/watchman"
)

// ParseRole normalizes a raw role string (case-insensitive, trimmed) and
// validates it against the closed role set.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleWarden:
		return RoleWarden, nil
	case RoleWatchman:
		return RoleWatchman, nil
	default:
		return "", ErrUnknownRole
	}
}

// Dashboard returns the dashboard route for a role.
func (r Role) Dashboard() DashboardTarget {
	if r == RoleWatchman {
		return DashboardWatchman
	}
	return DashboardWarden
}

// DashboardFor resolves a raw role string straight to a dashboard target.
// Pure and idempotent; unrecognized roles get ErrUnknownRole and no target.
func DashboardFor(raw string) (DashboardTarget, error) {
	role, err := ParseRole(raw)
	if err != nil {
		return "", err
	}
	return role.Dashboard(), nil
}
