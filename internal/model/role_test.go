package model

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Role
		wantErr bool
	}{
		{"lowercase warden", "warden", RoleWarden, false},
		{"titlecase warden", "Warden", RoleWarden, false},
		{"uppercase warden", "WARDEN", RoleWarden, false},
		{"lowercase watchman", "watchman", RoleWatchman, false},
		{"mixed case watchman", "WatchMan", RoleWatchman, false},
		{"surrounding whitespace", "  warden  ", RoleWarden, false},
		{"unknown role", "superadmin", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRole) {
					t.Fatalf("ParseRole(%q) error = %v, want ErrUnknownRole", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDashboardFor(t *testing.T) {
	// All spellings of one role must resolve to the same target.
	for _, raw := range []string{"warden", "Warden", "WARDEN"} {
		target, err := DashboardFor(raw)
		if err != nil {
			t.Fatalf("DashboardFor(%q) unexpected error: %v", raw, err)
		}
		if target != DashboardWarden {
			t.Fatalf("DashboardFor(%q) = %q, want %q", raw, target, DashboardWarden)
		}
	}

	target, err := DashboardFor("watchman")
	if err != nil {
		t.Fatalf("DashboardFor(watchman) unexpected error: %v", err)
	}
	if target != DashboardWatchman {
		t.Fatalf("DashboardFor(watchman) = %q, want %q", target, DashboardWatchman)
	}

	if _, err := DashboardFor("superadmin"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("DashboardFor(superadmin) error = %v, want ErrUnknownRole", err)
	}
}
