package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/response"
)

// RequireRole checks that the token's role claim is one of the given roles.
// Must run after RequireAdminJWT.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		code := response.ErrForbidden
		if len(roles) == 1 && roles[0] == model.RoleWatchman {
			code = response.ErrWatchmanAccessOnly
		}
		response.AbortFail(c, http.StatusForbidden, code)
	}
}
