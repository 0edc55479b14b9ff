package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"smartassess-backend/config"
	_ "smartassess-backend/docs" // Important for Swagger
	v1 "smartassess-backend/internal/delivery/http/v1"
	"smartassess-backend/internal/domain"
	"smartassess-backend/internal/repository/postgres"
	redisrepo "smartassess-backend/internal/repository/redis"
	"smartassess-backend/internal/usecase"
	"smartassess-backend/pkg/auth"
	"smartassess-backend/pkg/crypto"
	"smartassess-backend/pkg/database"
	"smartassess-backend/pkg/logger"
	"smartassess-backend/pkg/redis"
	"smartassess-backend/pkg/validation"
)

// @title           SmartAssess Onboarding API
// @version         1.0
// @description     Multi-tenant onboarding backend for candidates and recruiters.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	zl := logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer func() { _ = zl.Sync() }()
	zl.Info("Starting smartassess backend", zap.String("port", cfg.Port))

	// 3. Migrations (owner connection)
	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DBUrl, zl); err != nil {
			zl.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 4. Setup Database (row-security constrained role)
	ctx := context.Background()
	db, err := database.NewPostgresConnection(ctx, cfg.DBAppUserUrl, database.PoolConfig{})
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// 5. Optional Redis
	var principalCache domain.PrincipalCache
	cachePing := usecase.PingFunc(nil)
	redisClient, err := redis.New(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		zl.Info("Redis not configured - principal cache disabled")
	case err != nil:
		zl.Warn("Redis unavailable - continuing without cache", zap.Error(err))
	default:
		defer redisClient.Close()
		principalCache = redisrepo.NewPrincipalCache(redisClient, redisrepo.DefaultPrincipalTTL)
		cachePing = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	// 6. Credential encryption
	encryptor, err := crypto.NewCredentialEncryptor(cfg.EncryptionKey)
	if err != nil {
		zl.Fatal("Failed to initialize credential encryption", zap.Error(err))
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository()
	onboardingRepo := postgres.NewOnboardingRepository()
	candidateRepo := postgres.NewCandidateRepository()
	recruiterRepo := postgres.NewRecruiterProfileRepository()
	tagRepo := postgres.NewTagRepository()

	// 8. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(db, userRepo, principalCache)
	onboardingUC := usecase.NewOnboardingUsecase(db, onboardingRepo, candidateRepo, recruiterRepo, tagRepo, encryptor, validate)
	candidateUC := usecase.NewCandidateUsecase(db, candidateRepo)
	recruiterUC := usecase.NewRecruiterProfileUsecase(db, recruiterRepo, tagRepo, encryptor, validate)
	healthUC := usecase.NewHealthUsecase(cfg.AppEnv, db.Ping, cachePing)

	// 9. Setup Auth (HS256 secret and/or Supabase JWKS)
	var jwksProvider *auth.Provider
	if url := cfg.JWKSURL(); url != "" {
		jwksProvider = auth.NewProvider(url)
	}
	verifier := auth.NewVerifier(cfg.SupabaseJWTSecret, jwksProvider)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		OnboardingUC:   onboardingUC,
		CandidateUC:    candidateUC,
		RecruiterUC:    recruiterUC,
		HealthUC:       healthUC,
		Verifier:       verifier,
		AllowedOrigins: cfg.AllowedOrigins(),
		IsProduction:   cfg.IsProduction(),
		Logger:         zl,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}

	zl.Info("Server exiting")
}
