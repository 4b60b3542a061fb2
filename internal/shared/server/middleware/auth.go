package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diagnostic-backend/internal/shared/auth"
	"diagnostic-backend/internal/shared/server/respond"
)

const (
	adminSubKey   = "adminSub"
	adminEmailKey = "adminEmail"
)

// Auth reads an optional bearer token. Anonymous requests pass through; a malformed
// or invalid token is rejected.
func Auth(signer *auth.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if token == "" || signer == nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		claims, err := signer.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		c.Set(adminSubKey, claims.Sub)
		if claims.Email != "" {
			c.Set(adminEmailKey, claims.Email)
		}
		c.Next()
	}
}

// RequireAdmin rejects callers whose token email is not on the allow list.
func RequireAdmin(admins auth.AdminList) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AdminEmailFromContext(c)
		if email == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}
		if !admins.Allows(email) {
			respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
			return
		}
		c.Next()
	}
}

// AdminEmailFromContext fetches the email set by Auth.
func AdminEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(adminEmailKey)
}

// AdminSubjectFromContext fetches the token subject set by Auth.
func AdminSubjectFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(adminSubKey)
}
