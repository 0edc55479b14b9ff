package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartassess-backend/internal/delivery/http/response"
	"smartassess-backend/internal/domain"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterProfileUsecase
}

func NewRecruiterHandler(r *gin.RouterGroup, recruiterUC domain.RecruiterProfileUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	recruiter := r.Group("/recruiter")
	{
		recruiter.GET("/profile", handler.GetProfile)
		recruiter.PATCH("/organization", handler.UpdateOrganization)
	}
}

// GetProfile godoc
// @Summary      Get recruiter profile
// @Description  Organization, hiring tags and LLM settings of the current recruiter. The API key is never returned.
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiter/profile [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	profile, err := h.recruiterUC.GetProfile(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter profile", profile)
}

// UpdateOrganization godoc
// @Summary      Update organization
// @Description  Sparse update. Omitted fields are unchanged; a present tag list replaces that category.
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        request  body      domain.OrganizationUpdate  true  "Organization fields"
// @Success      200      {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /recruiter/organization [patch]
// @Security     BearerAuth
func (h *RecruiterHandler) UpdateOrganization(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req domain.OrganizationUpdate
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.recruiterUC.UpdateOrganization(c.Request.Context(), p, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Organization updated", profile)
}
