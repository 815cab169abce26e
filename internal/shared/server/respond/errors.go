package respond

import (
	"github.com/gin-gonic/gin"

	"docqa-backend/internal/shared/telemetry"
)

// ErrorResponse is the standardized error envelope. The error field carries a
// human-readable message; details carries optional field-level validation info.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, message string) {
	ErrorWithDetails(c, status, message, nil)
}

// ErrorWithDetails sends an error response with field-level details.
func ErrorWithDetails(c *gin.Context, status int, message string, details map[string]string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if isGuest, ok := c.Get("isGuest"); ok {
		fields["is_guest"] = isGuest
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
