package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostelhq/outpass-backend/internal/middleware"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/repository"
	"github.com/hostelhq/outpass-backend/internal/response"
	"github.com/hostelhq/outpass-backend/internal/service"
	"github.com/hostelhq/outpass-backend/internal/validator"
	"github.com/rs/zerolog"
)

// AuthHandler handles admin login, signup, and profile endpoints.
type AuthHandler struct {
	adminService *service.AdminService
	log          zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(adminService *service.AdminService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{adminService: adminService, log: log}
}

// Login godoc
// POST /admin/login
// Validates username + password and returns an identity token. The role and
// dashboard target are included alongside the token so the client can route
// without decoding it.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, token, err := h.adminService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		h.log.Error().Err(err).Msg("Login failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.AdminLoginResponse{
		Token:     token,
		Role:      admin.Role,
		Dashboard: admin.Role.Dashboard(),
		Admin:     *admin,
	})
}

// Signup godoc
// POST /admin/signup
// Creates a new warden or watchman account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.AdminSignupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownRole):
			response.Fail(c, http.StatusBadRequest, response.ErrUnknownRole)
		case errors.Is(err, repository.ErrDuplicateUsername):
			response.Fail(c, http.StatusConflict, response.ErrDuplicateUsername)
		default:
			h.log.Error().Err(err).Msg("Signup failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}

// Me godoc
// GET /admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("Profile lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin":     admin,
		"dashboard": admin.Role.Dashboard(),
	})
}
