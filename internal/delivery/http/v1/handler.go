package v1

import (
	"github.com/gin-gonic/gin"

	"smartassess-backend/internal/delivery/http/middleware"
	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/apperror"
)

// principal returns the authenticated caller, attaching a 401 when the auth
// middleware did not run.
func principal(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized("User not authenticated"))
	}
	return p, ok
}

// bindJSON decodes the body, attaching a 400 on malformed JSON.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(apperror.Validation("Invalid request body", map[string][]string{
			"_": {"Malformed JSON"},
		}))
		return false
	}
	return true
}

