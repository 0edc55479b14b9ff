package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartassess-backend/internal/delivery/http/response"
	"smartassess-backend/internal/domain"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

func NewHealthHandler(r *gin.RouterGroup, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	r.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Database and cache reachability
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.HealthStatus}
// @Failure      503  {object}  response.Response{data=domain.HealthStatus}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	if status.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Success:   false,
			Message:   "System degraded",
			Data:      status,
			RequestID: c.GetString(string(domain.KeyRequestID)),
		})
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
