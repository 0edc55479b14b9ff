package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smartassess-backend/internal/domain"
	"smartassess-backend/pkg/logger"
)

// PingFunc checks one backing service.
type PingFunc func(ctx context.Context) error

type healthUsecase struct {
	env      string
	database PingFunc
	cache    PingFunc
	timeout  time.Duration
}

// NewHealthUsecase builds the readiness check. cache may be nil when no
// cache is configured.
func NewHealthUsecase(env string, database, cache PingFunc) domain.HealthUsecase {
	return &healthUsecase{env: env, database: database, cache: cache, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) *domain.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	status := &domain.HealthStatus{
		Status:      "ok",
		Database:    "up",
		Cache:       "disabled",
		Timestamp:   time.Now().UTC(),
		Environment: u.env,
	}

	if err := u.database(ctx); err != nil {
		logger.Log.Warn("database health check failed", zap.Error(err))
		status.Database = "down"
		status.Status = "degraded"
	}

	// The cache is optional; losing it degrades latency, not correctness.
	if u.cache != nil {
		status.Cache = "up"
		if err := u.cache(ctx); err != nil {
			logger.Log.Warn("cache health check failed", zap.Error(err))
			status.Cache = "down"
		}
	}
	return status
}
