package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"diagnostic-backend/internal/shared/telemetry"
)

// Logging emits request.complete once the handler chain returns.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if id := c.GetString("diagnosticId"); id != "" {
			fields["diagnostic_id"] = id
		}
		if sector := c.GetString("sector"); sector != "" {
			fields["sector"] = sector
		}
		if email := AdminEmailFromContext(c); email != "" {
			fields["admin_email"] = email
		}
		telemetry.Info("request.complete", fields)
	}
}
