package response

import (
	"github.com/gin-gonic/gin"

	"smartassess-backend/internal/domain"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      interface{}         `json:"data,omitempty"`
	Error     interface{}         `json:"error,omitempty"`
	Details   map[string][]string `json:"details,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// ValidationError sends a 400 with per-field messages.
func ValidationError(c *gin.Context, code int, message string, details map[string][]string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Details:   details,
		RequestID: requestID(c),
	})
}
