package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smartassess-backend/internal/domain"
)

const (
	principalCachePrefix = "auth:principal:"
	// DefaultPrincipalTTL bounds how long a role change takes to apply.
	DefaultPrincipalTTL = 5 * time.Minute
)

type cachedPrincipal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

type principalCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPrincipalCache(client *redis.Client, ttl time.Duration) domain.PrincipalCache {
	if ttl <= 0 {
		ttl = DefaultPrincipalTTL
	}
	return &principalCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a miss. Corrupted entries are treated as misses.
func (c *principalCache) Get(ctx context.Context, id string) (*domain.Principal, error) {
	data, err := c.client.Get(ctx, principalCachePrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached principal: %w", err)
	}

	var cached cachedPrincipal
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, nil //nolint:nilerr
	}
	role := domain.Role(cached.Role)
	if cached.ID != id || !role.IsValid() {
		return nil, nil
	}

	return &domain.Principal{ID: cached.ID, Email: cached.Email, Role: role}, nil
}

func (c *principalCache) Set(ctx context.Context, p *domain.Principal) error {
	data, err := json.Marshal(cachedPrincipal{ID: p.ID, Email: p.Email, Role: string(p.Role)})
	if err != nil {
		return fmt.Errorf("marshal principal: %w", err)
	}
	return c.client.Set(ctx, principalCachePrefix+p.ID, data, c.ttl).Err()
}
