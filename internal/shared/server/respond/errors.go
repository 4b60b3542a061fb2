package respond

import (
	"github.com/gin-gonic/gin"

	"diagnostic-backend/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error logs http.error and aborts with the standard envelope.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if email := c.GetString("adminEmail"); email != "" {
		fields["admin_email"] = email
	}
	if id := c.GetString("diagnosticId"); id != "" {
		fields["diagnostic_id"] = id
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Field builds a single validation detail entry.
func Field(field, issue string) []map[string]string {
	return []map[string]string{{"field": field, "issue": issue}}
}
