package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/repository"
)

func newTestAdminService() *AdminService {
	return NewAdminService(newFakeAdminStore(), NewAuthService(testConfig()))
}

func signupRequest() model.AdminSignupRequest {
	return model.AdminSignupRequest{
		Name:     "Jane Warden",
		Username: "jane",
		Password: "hunter22",
		Role:     "Warden",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newTestAdminService()

	admin, err := svc.Register(ctx, signupRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if admin.Role != model.RoleWarden {
		t.Errorf("Role = %q, want normalized %q", admin.Role, model.RoleWarden)
	}
	if admin.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if admin.ID == "" {
		t.Error("ID not assigned")
	}

	got, token, err := svc.Authenticate(ctx, "jane", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if token == "" {
		t.Error("no token issued")
	}
	if got.Role != admin.Role {
		t.Errorf("authenticated role = %q, want %q", got.Role, admin.Role)
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newTestAdminService()

	if _, err := svc.Register(ctx, signupRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, unknownUserErr := svc.Authenticate(ctx, "nobody", "hunter22")
	_, _, wrongPassErr := svc.Authenticate(ctx, "jane", "wrong-password")

	if !errors.Is(unknownUserErr, ErrInvalidCredentials) {
		t.Fatalf("unknown user error = %v, want ErrInvalidCredentials", unknownUserErr)
	}
	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", wrongPassErr)
	}
	// Identical value, so no signal leaks about which check failed.
	if unknownUserErr.Error() != wrongPassErr.Error() {
		t.Fatalf("errors differ: %q vs %q", unknownUserErr, wrongPassErr)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newTestAdminService()

	if _, err := svc.Register(ctx, signupRequest()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Different name, password, and role — the username alone decides.
	dup := model.AdminSignupRequest{
		Name:     "Other Person",
		Username: "jane",
		Password: "different-pass",
		Role:     "watchman",
	}
	if _, err := svc.Register(ctx, dup); !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("second Register error = %v, want ErrDuplicateUsername", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	svc := newTestAdminService()

	req := signupRequest()
	req.Role = "superadmin"
	if _, err := svc.Register(ctx, req); !errors.Is(err, model.ErrUnknownRole) {
		t.Fatalf("Register error = %v, want ErrUnknownRole", err)
	}
}
