package middleware

import (
	"net/http"
	"strings"

	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey = "userID"
	contextEmailKey  = "userEmail"
)

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth validates the Bearer token and puts the caller's
// identity into the request context. Handlers read it back with
// UserIDFromContext; there is no ambient current-user state.
func RequireAuth(jwtSvc *utils.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.notAuthenticated", "Please sign in to continue.")
			c.Abort()
			return
		}
		claims, err := jwtSvc.ValidateToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidToken", "Session is invalid or expired. Please sign in again.")
			c.Abort()
			return
		}
		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuth sets the user identity when a valid Bearer token is
// present but lets unauthenticated requests through; downstream
// validation decides how to respond.
func OptionalAuth(jwtSvc *utils.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := jwtSvc.ValidateToken(token); err == nil {
				c.Set(contextUserIDKey, claims.UserID)
				c.Set(contextEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated caller's id, if any.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
