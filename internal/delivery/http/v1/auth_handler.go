package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartassess-backend/internal/delivery/http/response"
)

type AuthHandler struct{}

func NewAuthHandler(protected *gin.RouterGroup) {
	handler := &AuthHandler{}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

// Me godoc
// @Summary      Get current principal
// @Description  Returns the caller's id, email and role as resolved from the users table
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Principal}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, "Current user", p)
}
