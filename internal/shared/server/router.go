package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "diagnostic-backend/internal/auth"
	"diagnostic-backend/internal/diagnostics"
	"diagnostic-backend/internal/services/health"
	"diagnostic-backend/internal/shared/auth"
	"diagnostic-backend/internal/shared/config"
	"diagnostic-backend/internal/shared/metrics"
	"diagnostic-backend/internal/shared/server/middleware"
	"diagnostic-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	Signer            *auth.Signer
	Admins            auth.AdminList
	DiagnosticHandler *diagnostics.Handler
	GoogleAuth        *googleauth.GoogleService
	Limiter           *middleware.RateLimiter
	Health            *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsDevLike() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Signer),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				middleware.SubmitGroup: middleware.PerMinute(deps.Config.SubmitPerMinute),
			},
			GroupFor: middleware.SubmitGroupFor,
			Limiter:  deps.Limiter,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.DiagnosticHandler != nil {
		deps.DiagnosticHandler.RegisterRoutes(api)
	}

	admin := api.Group("/admin", middleware.RequireAdmin(deps.Admins))
	registerMeRoutes(admin)
	if deps.DiagnosticHandler != nil {
		deps.DiagnosticHandler.RegisterAdminRoutes(admin)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
