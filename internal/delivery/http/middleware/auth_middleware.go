package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartassess-backend/internal/delivery/http/response"
	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
	"smartassess-backend/pkg/auth"
	"smartassess-backend/pkg/logger"
)

// TokenVerifier is satisfied by *auth.Verifier.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware verifies the bearer token and resolves the caller's role from
// the users table. The JWT role claim is never trusted.
func AuthMiddleware(verifier TokenVerifier, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			logger.Log.Debug("token validation failed",
				zap.String("request_id", c.GetString(string(domain.KeyRequestID))),
				zap.Error(err),
			)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		principal, err := authUC.ResolvePrincipal(c.Request.Context(), claims.Subject, claims.Email)
		if err != nil {
			if appErr, ok := apperror.As(err); ok && appErr.Code < http.StatusInternalServerError {
				response.Error(c, appErr.Code, appErr.Message, nil)
				c.Abort()
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), principal.ID)
		c.Set(string(domain.KeyUserEmail), principal.Email)
		c.Set(string(domain.KeyUserRole), string(principal.Role))

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		const prefix = "Bearer "
		if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
			return strings.TrimSpace(header[len(prefix):])
		}
		return ""
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// Principal returns the caller set by AuthMiddleware.
func Principal(c *gin.Context) (domain.Principal, bool) {
	id := c.GetString(string(domain.KeyUserID))
	if id == "" {
		return domain.Principal{}, false
	}
	return domain.Principal{
		ID:    id,
		Email: c.GetString(string(domain.KeyUserEmail)),
		Role:  domain.Role(c.GetString(string(domain.KeyUserRole))),
	}, true
}
