package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartassess-backend/internal/delivery/http/response"
	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok && appErr.Code < http.StatusInternalServerError {
			if len(appErr.Details) > 0 {
				response.ValidationError(c, appErr.Code, appErr.Message, appErr.Details)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("unhandled request error",
			zap.String("request_id", c.GetString(string(domain.KeyRequestID))),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
