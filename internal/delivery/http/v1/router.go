package v1

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"smartassess-backend/internal/delivery/http/middleware"
	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/logger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	OnboardingUC domain.OnboardingUsecase
	CandidateUC  domain.CandidateUsecase
	RecruiterUC  domain.RecruiterProfileUsecase
	HealthUC     domain.HealthUsecase
	Verifier     middleware.TokenVerifier

	AllowedOrigins []string
	IsProduction   bool
	Logger         *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logger.Log
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins, deps.IsProduction)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware(deps.IsProduction))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Public routes
	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier, deps.AuthUC))
	{
		NewAuthHandler(protected)
		NewOnboardingHandler(protected, deps.OnboardingUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewRecruiterHandler(protected, deps.RecruiterUC)
	}

	return r
}
