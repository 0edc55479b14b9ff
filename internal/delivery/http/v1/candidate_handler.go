package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartassess-backend/internal/delivery/http/response"
	"smartassess-backend/internal/domain"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("/me", handler.GetProfile)
	}
}

// GetProfile godoc
// @Summary      Get own candidate profile
// @Description  Returns the profile created when the candidate completed onboarding
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}
