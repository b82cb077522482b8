package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/repository"
)

// AdminStore is the narrow data access surface AdminService needs.
// *repository.AdminRepository satisfies it; tests use an in-memory fake.
type AdminStore interface {
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}

// AdminService handles admin account flows: login and signup.
type AdminService struct {
	store AdminStore
	auth  *AuthService
}

// NewAdminService creates a new AdminService.
func NewAdminService(store AdminStore, auth *AuthService) *AdminService {
	return &AdminService{store: store, auth: auth}
}

// GetByID retrieves an admin by ID.
func (s *AdminService) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	return s.store.GetByID(ctx, id)
}

// Authenticate verifies a username/password pair and issues an identity
// token. A missing account and a wrong password return the identical
// ErrInvalidCredentials so neither case is distinguishable to the caller.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*model.Admin, string, error) {
	admin, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(admin)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// Register creates a new admin account. The role is validated against the
// closed {warden, watchman} set and stored normalized; anything else is
// rejected with model.ErrUnknownRole. The plaintext password is hashed
// immediately and never stored or returned.
func (s *AdminService) Register(ctx context.Context, req model.AdminSignupRequest) (*model.Admin, error) {
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.store.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
