package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartassess-backend/internal/delivery/http/response"
	"smartassess-backend/internal/domain"
)

type OnboardingHandler struct {
	onboardingUC domain.OnboardingUsecase
}

func NewOnboardingHandler(r *gin.RouterGroup, onboardingUC domain.OnboardingUsecase) {
	handler := &OnboardingHandler{onboardingUC: onboardingUC}

	onboarding := r.Group("/onboarding")
	{
		onboarding.GET("", handler.GetStatus)
		onboarding.PATCH("", handler.SaveDraft)
		onboarding.POST("/complete", handler.Complete)
	}
}

// GetStatus godoc
// @Summary      Get onboarding status
// @Description  Returns not_started, in_progress (with step and draft) or completed
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.OnboardingStatus}
// @Failure      401  {object}  response.Response
// @Router       /onboarding [get]
// @Security     BearerAuth
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	status, err := h.onboardingUC.GetStatus(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding status retrieved", status)
}

// SaveDraft godoc
// @Summary      Save onboarding draft
// @Description  Store a partial payload and the current wizard step
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SaveDraftRequest  true  "Draft"
// @Success      200      {object}  response.Response{data=domain.OnboardingResult}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /onboarding [patch]
// @Security     BearerAuth
func (h *OnboardingHandler) SaveDraft(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req domain.SaveDraftRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.onboardingUC.SaveDraft(c.Request.Context(), p, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Draft saved", result)
}

// Complete godoc
// @Summary      Complete onboarding wizard
// @Description  Submit the full payload, create the profile and mark onboarding as complete
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CompleteRequest  true  "Onboarding data"
// @Success      200      {object}  response.Response{data=domain.OnboardingResult}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /onboarding/complete [post]
// @Security     BearerAuth
func (h *OnboardingHandler) Complete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req domain.CompleteRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.onboardingUC.Complete(c.Request.Context(), p, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding completed successfully", result)
}
