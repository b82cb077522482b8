package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostelhq/outpass-backend/internal/config"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func tokenFor(t *testing.T, auth *service.AuthService, role model.Role) string {
	t.Helper()
	token, err := auth.GenerateToken(&model.Admin{
		ID:       "3f2c8a1e-0000-0000-0000-000000000001",
		Name:     "Test Admin",
		Username: "test",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func guardedRouter(auth *service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAdminJWT(auth)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	r.GET("/guarded", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdminJWT(t *testing.T) {
	auth := testAuthService()
	r := guardedRouter(auth)

	if rec := get(r, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	if rec := get(r, "not-a-jwt"); rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", rec.Code)
	}
	if rec := get(r, tokenFor(t, auth, model.RoleWarden)); rec.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireAdminJWTRejectsExpired(t *testing.T) {
	expired := service.NewAuthService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: -time.Minute,
	})
	token := tokenFor(t, expired, model.RoleWarden)

	r := guardedRouter(testAuthService())
	if rec := get(r, token); rec.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	auth := testAuthService()
	r := guardedRouter(auth, RequireRole(model.RoleWatchman))

	if rec := get(r, tokenFor(t, auth, model.RoleWatchman)); rec.Code != http.StatusOK {
		t.Errorf("watchman: status = %d, want 200", rec.Code)
	}
	if rec := get(r, tokenFor(t, auth, model.RoleWarden)); rec.Code != http.StatusForbidden {
		t.Errorf("warden on watchman route: status = %d, want 403", rec.Code)
	}
}
