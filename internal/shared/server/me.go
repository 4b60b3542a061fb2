package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diagnostic-backend/internal/shared/server/middleware"
	"diagnostic-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint the admin panel calls after login.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"sub":   middleware.AdminSubjectFromContext(c),
		"email": middleware.AdminEmailFromContext(c),
		"role":  "admin",
	})
}
