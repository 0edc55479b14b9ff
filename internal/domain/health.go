package domain

import (
	"context"
	"time"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	Cache       string    `json:"cache"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}
