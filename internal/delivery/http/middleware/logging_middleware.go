package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"smartassess-backend/internal/domain"
)

// RequestLogger writes one structured line per request. Query strings and
// headers are not logged since they may carry tokens.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		log.Log(level, "request",
			zap.String("request_id", c.GetString(string(domain.KeyRequestID))),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_id", c.GetString(string(domain.KeyUserID))),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
