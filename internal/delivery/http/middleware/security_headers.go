package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds the headers every JSON API response needs.
func SecurityHeadersMiddleware(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isProduction {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		// The swagger UI serves its own scripts and styles.
		if !strings.HasPrefix(c.Request.URL.Path, "/v1/swagger") {
			c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		}

		// Onboarding drafts and profiles are private to the caller.
		if c.GetHeader("Authorization") != "" {
			c.Header("Cache-Control", "no-store")
			c.Header("Pragma", "no-cache")
		}

		c.Next()
	}
}
