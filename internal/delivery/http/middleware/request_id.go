package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smartassess-backend/internal/domain"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates a caller supplied UUID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
